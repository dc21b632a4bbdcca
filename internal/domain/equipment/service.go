package equipment

import (
	"context"
	"strings"

	"gymoffice/internal/pkg/apperr"
)

// GymResolver is satisfied by the gym package's Repository.
type GymResolver interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
	gyms GymResolver
}

func NewService(repo Repository, gyms GymResolver) *Service {
	return &Service{repo: repo, gyms: gyms}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*EquipmentResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("equipment not found with id: %d", id)
	}
	resp := toResponse(e)
	return &resp, nil
}

func (s *Service) GetAll(ctx context.Context) ([]EquipmentResponse, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EquipmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.resolveGym(ctx, req.GymID); err != nil {
		return nil, err
	}

	// Status defaults to ACTIVE at creation time when the request omits it.
	status := StatusActive
	if req.Status != "" {
		status = Status(req.Status)
		if !status.Valid() {
			return nil, apperr.Validation("unknown equipment status: %s", req.Status)
		}
	}

	e := &Equipment{
		Name:    req.Name,
		BuyDate: req.BuyDate,
		Status:  status,
		GymID:   req.GymID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := toResponse(e)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*EquipmentResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("equipment not found with id: %d", id)
	}

	if req.GymID != nil {
		if err := s.resolveGym(ctx, *req.GymID); err != nil {
			return nil, err
		}
		e.GymID = *req.GymID
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperr.Validation("name must not be blank")
		}
		e.Name = *req.Name
	}
	if req.BuyDate != nil {
		e.BuyDate = req.BuyDate
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, apperr.Validation("unknown equipment status: %s", *req.Status)
		}
		e.Status = status
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := toResponse(e)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("equipment not found with id: %d", id)
	}
	return s.repo.Delete(ctx, id)
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
