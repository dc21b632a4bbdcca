package subscription

import (
	"context"

	"gymoffice/internal/pkg/apperr"
)

// ClientResolver and RateResolver are satisfied by the client and rate
// package repositories; the service only needs existence checks.
type ClientResolver interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type RateResolver interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	clients ClientResolver
	rates   RateResolver
}

func NewService(repo Repository, clients ClientResolver, rates RateResolver) *Service {
	return &Service{repo: repo, clients: clients, rates: rates}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*SubscriptionResponse, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.NotFound("subscription not found with id: %d", id)
	}
	resp := toResponse(sub)
	return &resp, nil
}

func (s *Service) GetAll(ctx context.Context) ([]SubscriptionResponse, error) {
	subs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toResponse(&subs[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req CreateSubscriptionRequest) (*SubscriptionResponse, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, apperr.Validation("end date must be after start date")
	}
	if err := s.resolveClient(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if err := s.resolveRate(ctx, req.RateID); err != nil {
		return nil, err
	}

	// Status defaults to ACTIVE at creation time when the request omits it.
	status := StatusActive
	if req.Status != "" {
		status = Status(req.Status)
		if !status.Valid() {
			return nil, apperr.Validation("unknown subscription status: %s", req.Status)
		}
	}

	sub := &Subscription{
		ClientID:     req.ClientID,
		RateID:       req.RateID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		FreezePeriod: req.FreezePeriod,
		Status:       status,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	resp := toResponse(sub)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateSubscriptionRequest) (*SubscriptionResponse, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.NotFound("subscription not found with id: %d", id)
	}

	// Re-validate the ordering on the effective pair whenever either date is
	// supplied, so an update can never leave end <= start behind.
	if req.StartDate != nil || req.EndDate != nil {
		start := sub.StartDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		end := sub.EndDate
		if req.EndDate != nil {
			end = *req.EndDate
		}
		if !end.After(start) {
			return nil, apperr.Validation("end date must be after start date")
		}
	}

	if req.ClientID != nil {
		if err := s.resolveClient(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		sub.ClientID = *req.ClientID
	}
	if req.RateID != nil {
		if err := s.resolveRate(ctx, *req.RateID); err != nil {
			return nil, err
		}
		sub.RateID = *req.RateID
	}
	if req.StartDate != nil {
		sub.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		sub.EndDate = *req.EndDate
	}
	if req.FreezePeriod != nil {
		sub.FreezePeriod = *req.FreezePeriod
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, apperr.Validation("unknown subscription status: %s", *req.Status)
		}
		sub.Status = status
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	resp := toResponse(sub)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("subscription not found with id: %d", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) resolveClient(ctx context.Context, clientID int64) error {
	ok, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("client not found with id: %d", clientID)
	}
	return nil
}

func (s *Service) resolveRate(ctx context.Context, rateID int64) error {
	ok, err := s.rates.Exists(ctx, rateID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("rate not found with id: %d", rateID)
	}
	return nil
}
