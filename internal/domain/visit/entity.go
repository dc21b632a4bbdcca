package visit

import "time"

// Visit records a client entering (and eventually leaving) a gym. An open
// visit has a nil check-out time.
type Visit struct {
	ID           int64      `gorm:"column:visit_id;primaryKey" json:"id"`
	ClientID     int64      `gorm:"column:client_id" json:"client_id"`
	GymID        int64      `gorm:"column:gym_id" json:"gym_id"`
	CheckInTime  time.Time  `gorm:"column:visit_check_in_time" json:"check_in_time"`
	CheckOutTime *time.Time `gorm:"column:visit_check_out_time" json:"check_out_time,omitempty"`
}

func (Visit) TableName() string { return "visits" }
