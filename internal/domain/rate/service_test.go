package rate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymoffice/internal/pkg/apperr"
)

type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) GetByID(ctx context.Context, id int64) (*Rate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rate), args.Error(1)
}

func (m *MockRateRepository) GetAll(ctx context.Context) ([]Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Rate), args.Error(1)
}

func (m *MockRateRepository) Create(ctx context.Context, r *Rate) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 1
	}
	return args.Error(0)
}

func (m *MockRateRepository) Update(ctx context.Context, r *Rate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRateRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	resp, err := service.Create(context.Background(), CreateRateRequest{
		Name:         "Monthly",
		Price:        49.90,
		PricePeriod:  "month",
		DurationDays: 30,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 49.90, resp.Price)
}

func TestService_Create_BlankName(t *testing.T) {
	repo := new(MockRateRepository)
	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateRateRequest{
		Name:         "   ",
		Price:        49.90,
		DurationDays: 30,
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Update_BlankName(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Rate{
		ID: 1, Name: "Monthly", Price: 49.90, DurationDays: 30,
	}, nil)

	service := NewService(repo)

	blank := " "
	_, err := service.Update(context.Background(), 1, UpdateRateRequest{Name: &blank})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	repo.AssertNotCalled(t, "Update")
}

func TestService_Update_NonPositivePrice(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Rate{
		ID: 1, Name: "Monthly", Price: 49.90, DurationDays: 30,
	}, nil)

	service := NewService(repo)

	zero := 0.0
	_, err := service.Update(context.Background(), 1, UpdateRateRequest{Price: &zero})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	repo.AssertNotCalled(t, "Update")
}

func TestService_Update_NonPositiveDuration(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Rate{
		ID: 1, Name: "Monthly", Price: 49.90, DurationDays: 30,
	}, nil)

	service := NewService(repo)

	neg := -30
	_, err := service.Update(context.Background(), 1, UpdateRateRequest{DurationDays: &neg})

	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_Update_PartialKeepsPrice(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Rate{
		ID: 1, Name: "Monthly", Price: 49.90, PricePeriod: "month", DurationDays: 30,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	desc := "Standard monthly plan"
	resp, err := service.Update(context.Background(), 1, UpdateRateRequest{Description: &desc})

	assert.NoError(t, err)
	assert.Equal(t, 49.90, resp.Price)
	assert.Equal(t, "Standard monthly plan", resp.Description)
}

func TestService_GetAll_Empty(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("GetAll", mock.Anything).Return([]Rate{}, nil)

	service := NewService(repo)

	out, err := service.GetAll(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("Exists", mock.Anything, int64(77)).Return(false, nil)

	service := NewService(repo)

	err := service.Delete(context.Background(), 77)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
