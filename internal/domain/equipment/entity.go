package equipment

import "time"

type Status string

const (
	StatusActive         Status = "ACTIVE"
	StatusBroken         Status = "BROKEN"
	StatusUnderRepair    Status = "UNDER_REPAIR"
	StatusDecommissioned Status = "DECOMMISSIONED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusBroken, StatusUnderRepair, StatusDecommissioned:
		return true
	}
	return false
}

// Equipment always belongs to exactly one gym.
type Equipment struct {
	ID      int64      `gorm:"column:equipment_id;primaryKey" json:"id"`
	Name    string     `gorm:"column:equipment_name" json:"name"`
	BuyDate *time.Time `gorm:"column:equipment_buy_date" json:"buy_date,omitempty"`
	Status  Status     `gorm:"column:equipment_status" json:"status"`
	GymID   int64      `gorm:"column:gym_id" json:"gym_id"`
}

func (Equipment) TableName() string { return "equipment" }
