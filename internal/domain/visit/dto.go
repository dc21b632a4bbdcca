package visit

import "time"

type CreateVisitRequest struct {
	ClientID     int64      `json:"client_id" binding:"required"`
	GymID        int64      `json:"gym_id" binding:"required"`
	CheckInTime  time.Time  `json:"check_in_time" binding:"required"`
	CheckOutTime *time.Time `json:"check_out_time"`
}

type UpdateVisitRequest struct {
	ClientID     *int64     `json:"client_id"`
	GymID        *int64     `json:"gym_id"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
}

type VisitResponse struct {
	ID           int64      `json:"id"`
	ClientID     int64      `json:"client_id"`
	GymID        int64      `json:"gym_id"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

func toResponse(v *Visit) VisitResponse {
	return VisitResponse{
		ID:           v.ID,
		ClientID:     v.ClientID,
		GymID:        v.GymID,
		CheckInTime:  v.CheckInTime,
		CheckOutTime: v.CheckOutTime,
	}
}
