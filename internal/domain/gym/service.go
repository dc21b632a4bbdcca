package gym

import (
	"context"
	"time"

	"gymoffice/internal/database"
	"gymoffice/internal/pkg/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*GymResponse, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperr.NotFound("gym not found with id: %d", id)
	}
	resp := toResponse(g)
	return &resp, nil
}

func (s *Service) GetAll(ctx context.Context) ([]GymResponse, error) {
	gyms, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GymResponse, 0, len(gyms))
	for i := range gyms {
		out = append(out, toResponse(&gyms[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req CreateGymRequest) (*GymResponse, error) {
	if err := validateHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	g := &Gym{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("gym address %q is already registered", req.Address)
		}
		return nil, err
	}
	resp := toResponse(g)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateGymRequest) (*GymResponse, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperr.NotFound("gym not found with id: %d", id)
	}

	// Validate the effective pair before touching the row: each side falls
	// back to the persisted value when the request omits it.
	if req.OpenTime != nil || req.CloseTime != nil {
		open := g.OpenTime
		if req.OpenTime != nil {
			open = *req.OpenTime
		}
		closeTime := g.CloseTime
		if req.CloseTime != nil {
			closeTime = *req.CloseTime
		}
		if err := validateHours(open, closeTime); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.Phone != nil {
		g.Phone = *req.Phone
	}
	if req.OpenTime != nil {
		g.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		g.CloseTime = *req.CloseTime
	}

	if err := s.repo.Update(ctx, g); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("gym address %q is already registered", g.Address)
		}
		return nil, err
	}
	resp := toResponse(g)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("gym not found with id: %d", id)
	}
	return s.repo.Delete(ctx, id)
}

func validateHours(open, closeTime string) error {
	openT, err := time.Parse("15:04", open)
	if err != nil {
		return apperr.Validation("open time %q is not a valid HH:MM value", open)
	}
	closeT, err := time.Parse("15:04", closeTime)
	if err != nil {
		return apperr.Validation("close time %q is not a valid HH:MM value", closeTime)
	}
	if !closeT.After(openT) {
		return apperr.Validation("close time must be after open time")
	}
	return nil
}
