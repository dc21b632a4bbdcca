package client

import "time"

type Client struct {
	ID               int64      `gorm:"column:client_id;primaryKey" json:"id"`
	FirstName        string     `gorm:"column:client_first_name" json:"first_name"`
	LastName         string     `gorm:"column:client_last_name" json:"last_name"`
	Phone            string     `gorm:"column:client_phone;uniqueIndex" json:"phone"`
	Email            string     `gorm:"column:client_email" json:"email"`
	DateOfBirth      *time.Time `gorm:"column:client_date_of_birth" json:"date_of_birth,omitempty"`
	RegistrationDate time.Time  `gorm:"column:client_registration_date" json:"registration_date"`
}

func (Client) TableName() string { return "clients" }
