package subscription

import "time"

type CreateSubscriptionRequest struct {
	ClientID     int64     `json:"client_id" binding:"required"`
	RateID       int64     `json:"rate_id" binding:"required"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	FreezePeriod string    `json:"freeze_period"`
	Status       string    `json:"status"`
}

type UpdateSubscriptionRequest struct {
	ClientID     *int64     `json:"client_id"`
	RateID       *int64     `json:"rate_id"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	FreezePeriod *string    `json:"freeze_period"`
	Status       *string    `json:"status"`
}

type SubscriptionResponse struct {
	ID           int64     `json:"id"`
	ClientID     int64     `json:"client_id"`
	RateID       int64     `json:"rate_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	FreezePeriod string    `json:"freeze_period,omitempty"`
	Status       string    `json:"status"`
}

func toResponse(s *Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           s.ID,
		ClientID:     s.ClientID,
		RateID:       s.RateID,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		FreezePeriod: s.FreezePeriod,
		Status:       string(s.Status),
	}
}
