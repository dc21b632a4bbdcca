package employee

import "time"

// Employee works at zero or one gym; GymID is nil for unassigned staff.
type Employee struct {
	ID            int64      `gorm:"column:employee_id;primaryKey" json:"id"`
	FirstName     string     `gorm:"column:employee_first_name" json:"first_name"`
	LastName      string     `gorm:"column:employee_last_name" json:"last_name"`
	Phone         string     `gorm:"column:employee_phone;uniqueIndex" json:"phone"`
	Email         string     `gorm:"column:employee_email" json:"email"`
	GymID         *int64     `gorm:"column:gym_id" json:"gym_id,omitempty"`
	HireDate      time.Time  `gorm:"column:employee_hire_date" json:"hire_date"`
	DismissalDate *time.Time `gorm:"column:employee_dismissal_date" json:"dismissal_date,omitempty"`
	Post          string     `gorm:"column:employee_post" json:"post"`
	Salary        float64    `gorm:"column:employee_salary" json:"salary"`
}

func (Employee) TableName() string { return "employees" }
