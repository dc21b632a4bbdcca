package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymoffice/internal/pkg/apperr"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id int64) (*Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetAll(ctx context.Context) ([]Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *Equipment) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 1
	}
	return args.Error(0)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, e *Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockGymResolver struct {
	mock.Mock
}

func (m *MockGymResolver) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create_DefaultsToActive(t *testing.T) {
	repo := new(MockEquipmentRepository)
	gyms := new(MockGymResolver)

	gyms.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, gyms)

	resp, err := service.Create(context.Background(), CreateEquipmentRequest{
		Name:  "Treadmill X200",
		GymID: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, string(StatusActive), resp.Status)
}

func TestService_Create_InvalidStatus(t *testing.T) {
	repo := new(MockEquipmentRepository)
	gyms := new(MockGymResolver)

	gyms.On("Exists", mock.Anything, int64(2)).Return(true, nil)

	service := NewService(repo, gyms)

	_, err := service.Create(context.Background(), CreateEquipmentRequest{
		Name:   "Treadmill X200",
		GymID:  2,
		Status: "RUSTY",
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_UnknownGym(t *testing.T) {
	repo := new(MockEquipmentRepository)
	gyms := new(MockGymResolver)

	gyms.On("Exists", mock.Anything, int64(404)).Return(false, nil)

	service := NewService(repo, gyms)

	_, err := service.Create(context.Background(), CreateEquipmentRequest{
		Name:  "Treadmill X200",
		GymID: 404,
	})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Update_MarkBroken(t *testing.T) {
	repo := new(MockEquipmentRepository)
	gyms := new(MockGymResolver)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Equipment{
		ID:     1,
		Name:   "Treadmill X200",
		Status: StatusActive,
		GymID:  2,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, gyms)

	status := "BROKEN"
	resp, err := service.Update(context.Background(), 1, UpdateEquipmentRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "BROKEN", resp.Status)
	assert.Equal(t, int64(2), resp.GymID)
	gyms.AssertNotCalled(t, "Exists")
}

func TestService_Update_MoveToOtherGym(t *testing.T) {
	repo := new(MockEquipmentRepository)
	gyms := new(MockGymResolver)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Equipment{
		ID:     1,
		Name:   "Treadmill X200",
		Status: StatusActive,
		GymID:  2,
	}, nil)
	gyms.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, gyms)

	gymID := int64(3)
	resp, err := service.Update(context.Background(), 1, UpdateEquipmentRequest{GymID: &gymID})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.GymID)
	repo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockEquipmentRepository)
	repo.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	service := NewService(repo, new(MockGymResolver))

	err := service.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
