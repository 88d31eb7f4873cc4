package request

import (
	"time"
)

type CreateSlotRequest struct {
	StartAt  time.Time `json:"start_at" binding:"required"`
	EndAt    time.Time `json:"end_at" binding:"required"`
	Capacity int       `json:"capacity" binding:"required,min=1"`
}

// GenerateSlotsRequest cuts one working window into equal slots. Sub-windows
// that collide with existing slots are skipped, not rejected.
type GenerateSlotsRequest struct {
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	IntervalMin int       `json:"interval_min" binding:"required,min=5,max=480"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
}

func (r GenerateSlotsRequest) Interval() time.Duration {
	return time.Duration(r.IntervalMin) * time.Minute
}

type SetSlotOpenRequest struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}
