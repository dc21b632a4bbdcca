package visit

import (
	"context"

	"gymoffice/internal/pkg/apperr"
)

type ClientResolver interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type GymResolver interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	clients ClientResolver
	gyms    GymResolver
}

func NewService(repo Repository, clients ClientResolver, gyms GymResolver) *Service {
	return &Service{repo: repo, clients: clients, gyms: gyms}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*VisitResponse, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("visit not found with id: %d", id)
	}
	resp := toResponse(v)
	return &resp, nil
}

func (s *Service) GetAll(ctx context.Context) ([]VisitResponse, error) {
	visits, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]VisitResponse, 0, len(visits))
	for i := range visits {
		out = append(out, toResponse(&visits[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req CreateVisitRequest) (*VisitResponse, error) {
	if err := s.resolveClient(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if err := s.resolveGym(ctx, req.GymID); err != nil {
		return nil, err
	}

	v := &Visit{
		ClientID:     req.ClientID,
		GymID:        req.GymID,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := toResponse(v)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVisitRequest) (*VisitResponse, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("visit not found with id: %d", id)
	}

	if req.ClientID != nil {
		if err := s.resolveClient(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		v.ClientID = *req.ClientID
	}
	if req.GymID != nil {
		if err := s.resolveGym(ctx, *req.GymID); err != nil {
			return nil, err
		}
		v.GymID = *req.GymID
	}
	if req.CheckInTime != nil {
		v.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		v.CheckOutTime = req.CheckOutTime
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := toResponse(v)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("visit not found with id: %d", id)
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

func (s *Service) resolveGym(ctx context.Context, gymID int64) error {
	ok, err := s.gyms.Exists(ctx, gymID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("gym not found with id: %d", gymID)
	}
	return nil
}
