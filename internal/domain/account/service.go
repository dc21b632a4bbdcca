package account

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gymoffice/internal/database"
	"gymoffice/internal/pkg/apperr"
	jwtsvc "gymoffice/internal/pkg/jwt"
)

type Service struct {
	repo Repository
	jwt  *jwtsvc.Service
}

func NewService(repo Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := RoleManager
	if req.Role != "" {
		role = Role(req.Role)
	}

	a := &Account{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("account email %q is already registered", req.Email)
		}
		return nil, err
	}

	return s.authResponse(a)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	a, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(a)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*AccountResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("account not found with id: %d", id)
	}
	resp := toResponse(a)
	return &resp, nil
}

func (s *Service) authResponse(a *Account) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(a.ID, string(a.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, Account: toResponse(a)}, nil
}
