package equipment

import "time"

type CreateEquipmentRequest struct {
	Name    string     `json:"name" binding:"required"`
	BuyDate *time.Time `json:"buy_date"`
	Status  string     `json:"status"`
	GymID   int64      `json:"gym_id" binding:"required"`
}

type UpdateEquipmentRequest struct {
	Name    *string    `json:"name"`
	BuyDate *time.Time `json:"buy_date"`
	Status  *string    `json:"status"`
	GymID   *int64     `json:"gym_id"`
}

type EquipmentResponse struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	BuyDate *time.Time `json:"buy_date,omitempty"`
	Status  string     `json:"status"`
	GymID   int64      `json:"gym_id"`
}

func toResponse(e *Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:      e.ID,
		Name:    e.Name,
		BuyDate: e.BuyDate,
		Status:  string(e.Status),
		GymID:   e.GymID,
	}
}
