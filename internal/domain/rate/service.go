package rate

import (
	"context"
	"strings"

	"gymoffice/internal/pkg/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*RateResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("rate not found with id: %d", id)
	}
	resp := toResponse(r)
	return &resp, nil
}

func (s *Service) GetAll(ctx context.Context) ([]RateResponse, error) {
	rates, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RateResponse, 0, len(rates))
	for i := range rates {
		out = append(out, toResponse(&rates[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req CreateRateRequest) (*RateResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation("rate name must not be blank")
	}

	r := &Rate{
		Name:         req.Name,
		Price:        req.Price,
		PricePeriod:  req.PricePeriod,
		DurationDays: req.DurationDays,
		Description:  req.Description,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	resp := toResponse(r)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRateRequest) (*RateResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("rate not found with id: %d", id)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperr.Validation("rate name must not be blank")
		}
		r.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperr.Validation("price must be positive")
		}
		r.Price = *req.Price
	}
	if req.PricePeriod != nil {
		r.PricePeriod = *req.PricePeriod
	}
	if req.DurationDays != nil {
		if *req.DurationDays <= 0 {
			return nil, apperr.Validation("duration must be positive")
		}
		r.DurationDays = *req.DurationDays
	}
	if req.Description != nil {
		r.Description = *req.Description
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	resp := toResponse(r)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("rate not found with id: %d", id)
	}
	return s.repo.Delete(ctx, id)
}
