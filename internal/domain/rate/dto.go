package rate

type CreateRateRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	PricePeriod  string  `json:"price_period"`
	DurationDays int     `json:"duration_days" binding:"required,gt=0"`
	Description  string  `json:"description"`
}

type UpdateRateRequest struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	PricePeriod  *string  `json:"price_period"`
	DurationDays *int     `json:"duration_days"`
	Description  *string  `json:"description"`
}

type RateResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PricePeriod  string  `json:"price_period"`
	DurationDays int     `json:"duration_days"`
	Description  string  `json:"description"`
}

func toResponse(r *Rate) RateResponse {
	return RateResponse{
		ID:           r.ID,
		Name:         r.Name,
		Price:        r.Price,
		PricePeriod:  r.PricePeriod,
		DurationDays: r.DurationDays,
		Description:  r.Description,
	}
}
