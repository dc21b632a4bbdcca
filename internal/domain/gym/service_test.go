package gym

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymoffice/internal/pkg/apperr"
)

type MockGymRepository struct {
	mock.Mock
}

func (m *MockGymRepository) GetByID(ctx context.Context, id int64) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockGymRepository) GetAll(ctx context.Context) ([]Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockGymRepository) Create(ctx context.Context, g *Gym) error {
	args := m.Called(ctx, g)
	if g != nil {
		g.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockGymRepository) Update(ctx context.Context, g *Gym) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGymRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGymRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockGymRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	resp, err := service.Create(context.Background(), CreateGymRequest{
		Name:      "Downtown",
		Address:   "1 Main St",
		Phone:     "+1-202-555-0101",
		OpenTime:  "07:00",
		CloseTime: "23:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "07:00", resp.OpenTime)
	repo.AssertExpectations(t)
}

func TestService_Create_BadHours(t *testing.T) {
	repo := new(MockGymRepository)
	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateGymRequest{
		Name:      "Downtown",
		Address:   "1 Main St",
		OpenTime:  "25:99",
		CloseTime: "23:00",
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_CloseBeforeOpen(t *testing.T) {
	repo := new(MockGymRepository)
	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateGymRequest{
		Name:      "Downtown",
		Address:   "1 Main St",
		OpenTime:  "22:00",
		CloseTime: "08:00",
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockGymRepository)
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	service := NewService(repo)

	_, err := service.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "42")
}

func TestService_Update_PartialLeavesOtherFields(t *testing.T) {
	repo := new(MockGymRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&Gym{
		ID:        7,
		Name:      "Downtown",
		Address:   "1 Main St",
		Phone:     "+1-202-555-0101",
		OpenTime:  "07:00",
		CloseTime: "23:00",
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	name := "Downtown West"
	resp, err := service.Update(context.Background(), 7, UpdateGymRequest{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "Downtown West", resp.Name)
	assert.Equal(t, "1 Main St", resp.Address)
	assert.Equal(t, "07:00", resp.OpenTime)
	repo.AssertExpectations(t)
}

// Updating only the open time must still be checked against the stored
// close time.
func TestService_Update_EffectiveHoursPair(t *testing.T) {
	repo := new(MockGymRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&Gym{
		ID:        7,
		Name:      "Downtown",
		Address:   "1 Main St",
		OpenTime:  "07:00",
		CloseTime: "23:00",
	}, nil)

	service := NewService(repo)

	open := "23:30"
	_, err := service.Update(context.Background(), 7, UpdateGymRequest{OpenTime: &open})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	repo.AssertNotCalled(t, "Update")
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockGymRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	service := NewService(repo)

	name := "Ghost"
	_, err := service.Update(context.Background(), 99, UpdateGymRequest{Name: &name})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockGymRepository)
	repo.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	service := NewService(repo)

	err := service.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	repo.AssertNotCalled(t, "Delete")
}

func TestService_Delete_Success(t *testing.T) {
	repo := new(MockGymRepository)
	repo.On("Exists", mock.Anything, int64(7)).Return(true, nil)
	repo.On("Delete", mock.Anything, int64(7)).Return(nil)

	service := NewService(repo)

	assert.NoError(t, service.Delete(context.Background(), 7))
	repo.AssertExpectations(t)
}
