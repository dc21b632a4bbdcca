package rate

// Rate is a price plan subscriptions are sold under.
type Rate struct {
	ID           int64   `gorm:"column:rate_id;primaryKey" json:"id"`
	Name         string  `gorm:"column:rate_name" json:"name"`
	Price        float64 `gorm:"column:rate_price" json:"price"`
	PricePeriod  string  `gorm:"column:rate_price_period" json:"price_period"`
	DurationDays int     `gorm:"column:rate_duration_days" json:"duration_days"`
	Description  string  `gorm:"column:rate_description" json:"description"`
}

func (Rate) TableName() string { return "rates" }
