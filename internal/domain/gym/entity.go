package gym

// Gym is a physical location clients visit and employees work at.
// Open/close times are stored as "HH:MM" wall-clock strings.
type Gym struct {
	ID        int64  `gorm:"column:gym_id;primaryKey" json:"id"`
	Name      string `gorm:"column:gym_name" json:"name"`
	Address   string `gorm:"column:gym_address;uniqueIndex" json:"address"`
	Phone     string `gorm:"column:gym_phone" json:"phone"`
	OpenTime  string `gorm:"column:gym_open_time" json:"open_time"`
	CloseTime string `gorm:"column:gym_close_time" json:"close_time"`
}

func (Gym) TableName() string { return "gyms" }
