package client

import "time"

type CreateClientRequest struct {
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email" binding:"omitempty,email"`
	DateOfBirth *time.Time `json:"date_of_birth" binding:"omitempty,lt"`
}

type UpdateClientRequest struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// SearchFilter holds the optional equality filters and paging for the client
// search endpoint. Nil filters match everything.
type SearchFilter struct {
	ID         *int64
	Email      *string
	PageSize   *int
	PageNumber *int
}

type ClientResponse struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	RegistrationDate time.Time  `json:"registration_date"`
}

func toResponse(c *Client) ClientResponse {
	return ClientResponse{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Phone:            c.Phone,
		Email:            c.Email,
		DateOfBirth:      c.DateOfBirth,
		RegistrationDate: c.RegistrationDate,
	}
}
