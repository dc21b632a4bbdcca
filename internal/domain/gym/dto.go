package gym

type CreateGymRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
}

// UpdateGymRequest carries only the fields to overwrite; nil means leave the
// persisted value untouched.
type UpdateGymRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
}

type GymResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

func toResponse(g *Gym) GymResponse {
	return GymResponse{
		ID:        g.ID,
		Name:      g.Name,
		Address:   g.Address,
		Phone:     g.Phone,
		OpenTime:  g.OpenTime,
		CloseTime: g.CloseTime,
	}
}
