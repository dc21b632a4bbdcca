package employee

import "time"

type CreateEmployeeRequest struct {
	FirstName     string     `json:"first_name" binding:"required"`
	LastName      string     `json:"last_name" binding:"required"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email" binding:"omitempty,email"`
	GymID         *int64     `json:"gym_id"`
	HireDate      time.Time  `json:"hire_date" binding:"required"`
	DismissalDate *time.Time `json:"dismissal_date"`
	Post          string     `json:"post" binding:"required"`
	Salary        float64    `json:"salary" binding:"required,gt=0"`
}

type UpdateEmployeeRequest struct {
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	Phone         *string    `json:"phone"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	GymID         *int64     `json:"gym_id"`
	HireDate      *time.Time `json:"hire_date"`
	DismissalDate *time.Time `json:"dismissal_date"`
	Post          *string    `json:"post"`
	Salary        *float64   `json:"salary"`
}

type EmployeeResponse struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	GymID         *int64     `json:"gym_id,omitempty"`
	HireDate      time.Time  `json:"hire_date"`
	DismissalDate *time.Time `json:"dismissal_date,omitempty"`
	Post          string     `json:"post"`
	Salary        float64    `json:"salary"`
}

func toResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Phone:         e.Phone,
		Email:         e.Email,
		GymID:         e.GymID,
		HireDate:      e.HireDate,
		DismissalDate: e.DismissalDate,
		Post:          e.Post,
		Salary:        e.Salary,
	}
}
