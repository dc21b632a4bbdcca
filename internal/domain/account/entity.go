package account

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// Account is a back-office staff login; it is not related to gym clients.
type Account struct {
	ID           int64     `gorm:"column:account_id;primaryKey" json:"id"`
	Email        string    `gorm:"column:account_email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:account_password_hash" json:"-"`
	Role         Role      `gorm:"column:account_role" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Account) TableName() string { return "accounts" }
