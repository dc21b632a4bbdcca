package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	jwtsvc "gymoffice/internal/pkg/jwt"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *Account) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 1
	}
	return args.Error(0)
}

func newTestJWT() *jwtsvc.Service {
	return jwtsvc.New("test-secret", time.Hour)
}

func TestService_Register_DefaultsToManager(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, newTestJWT())

	resp, err := service.Register(context.Background(), RegisterRequest{
		Email:    "staff@gymoffice.local",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, string(RoleManager), resp.Account.Role)
}

func TestService_Register_StoresHashNotPassword(t *testing.T) {
	repo := new(MockAccountRepository)
	var created *Account
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*Account)
	}).Return(nil)

	service := NewService(repo, newTestJWT())

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "staff@gymoffice.local",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-password")))
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "staff@gymoffice.local").Return(&Account{
		ID:           1,
		Email:        "staff@gymoffice.local",
		PasswordHash: string(hash),
		Role:         RoleAdmin,
	}, nil)

	service := NewService(repo, newTestJWT())

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "staff@gymoffice.local",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, string(RoleAdmin), resp.Account.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "staff@gymoffice.local").Return(&Account{
		ID:           1,
		Email:        "staff@gymoffice.local",
		PasswordHash: string(hash),
	}, nil)

	service := NewService(repo, newTestJWT())

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "staff@gymoffice.local",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown emails report the same error as a wrong password.
func TestService_Login_UnknownEmail(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "nobody@gymoffice.local").Return(nil, nil)

	service := NewService(repo, newTestJWT())

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@gymoffice.local",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
