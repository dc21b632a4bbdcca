package employee

import (
	"context"
	"strings"

	"gymoffice/internal/database"
	"gymoffice/internal/pkg/apperr"
)

// GymResolver checks that a referenced gym exists before it is attached.
// Satisfied by the gym package's Repository.
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

func (s *Service) GetByID(ctx context.Context, id int64) (*EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("employee not found with id: %d", id)
	}
	resp := toResponse(e)
	return &resp, nil
}

func (s *Service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, toResponse(&employees[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, apperr.Validation("first name must not be blank")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, apperr.Validation("last name must not be blank")
	}
	if strings.TrimSpace(req.Post) == "" {
		return nil, apperr.Validation("post must not be blank")
	}
	if req.GymID != nil {
		if err := s.resolveGym(ctx, *req.GymID); err != nil {
			return nil, err
		}
	}

	e := &Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Email:         req.Email,
		GymID:         req.GymID,
		HireDate:      req.HireDate,
		DismissalDate: req.DismissalDate,
		Post:          req.Post,
		Salary:        req.Salary,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("employee phone %q is already registered", req.Phone)
		}
		return nil, err
	}
	resp := toResponse(e)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("employee not found with id: %d", id)
	}

	if req.GymID != nil {
		if err := s.resolveGym(ctx, *req.GymID); err != nil {
			return nil, err
		}
		e.GymID = req.GymID
	}
	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, apperr.Validation("first name must not be blank")
		}
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return nil, apperr.Validation("last name must not be blank")
		}
		e.LastName = *req.LastName
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.HireDate != nil {
		e.HireDate = *req.HireDate
	}
	if req.DismissalDate != nil {
		e.DismissalDate = req.DismissalDate
	}
	if req.Post != nil {
		if strings.TrimSpace(*req.Post) == "" {
			return nil, apperr.Validation("post must not be blank")
		}
		e.Post = *req.Post
	}
	if req.Salary != nil {
		if *req.Salary <= 0 {
			return nil, apperr.Validation("salary must be positive")
		}
		e.Salary = *req.Salary
	}

	if err := s.repo.Update(ctx, e); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("employee phone %q is already registered", e.Phone)
		}
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
		return apperr.NotFound("employee not found with id: %d", id)
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
