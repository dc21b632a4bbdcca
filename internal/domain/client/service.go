package client

import (
	"context"
	"strings"
	"time"

	"gymoffice/internal/database"
	"gymoffice/internal/pkg/apperr"
)

const (
	defaultPageSize   = 10
	defaultPageNumber = 0
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*ClientResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("client not found with id: %d", id)
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) GetAll(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toResponse(&clients[i]))
	}
	return out, nil
}

func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]ClientResponse, error) {
	pageSize := defaultPageSize
	if filter.PageSize != nil {
		if *filter.PageSize <= 0 {
			return nil, apperr.Validation("page size must be positive")
		}
		pageSize = *filter.PageSize
	}
	pageNumber := defaultPageNumber
	if filter.PageNumber != nil {
		if *filter.PageNumber < 0 {
			return nil, apperr.Validation("page number must not be negative")
		}
		pageNumber = *filter.PageNumber
	}

	clients, err := s.repo.Search(ctx, filter.ID, filter.Email, pageSize, pageNumber*pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toResponse(&clients[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, apperr.Validation("first name must not be blank")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, apperr.Validation("last name must not be blank")
	}

	c := &Client{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Email:            req.Email,
		DateOfBirth:      req.DateOfBirth,
		RegistrationDate: time.Now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("client phone %q is already registered", req.Phone)
		}
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateClientRequest) (*ClientResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("client not found with id: %d", id)
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, apperr.Validation("first name must not be blank")
		}
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return nil, apperr.Validation("last name must not be blank")
		}
		c.LastName = *req.LastName
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.DateOfBirth != nil {
		if !req.DateOfBirth.Before(time.Now()) {
			return nil, apperr.Validation("date of birth must be in the past")
		}
		c.DateOfBirth = req.DateOfBirth
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("client phone %q is already registered", c.Phone)
		}
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("client not found with id: %d", id)
	}
	return s.repo.Delete(ctx, id)
}
