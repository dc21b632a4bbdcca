package subscription

import "time"

// Status of a subscription.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusFrozen    Status = "FROZEN"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusFrozen, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// Subscription ties a client to a rate for a date range. Related rows are
// referenced by bare ids; the service resolves them before attach.
type Subscription struct {
	ID           int64     `gorm:"column:subscription_id;primaryKey" json:"id"`
	ClientID     int64     `gorm:"column:client_id" json:"client_id"`
	RateID       int64     `gorm:"column:rate_id" json:"rate_id"`
	StartDate    time.Time `gorm:"column:subscription_start_date" json:"start_date"`
	EndDate      time.Time `gorm:"column:subscription_end_date" json:"end_date"`
	FreezePeriod string    `gorm:"column:subscription_freeze_period" json:"freeze_period"`
	Status       Status    `gorm:"column:subscription_status" json:"status"`
}

func (Subscription) TableName() string { return "subscriptions" }
