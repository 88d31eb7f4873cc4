package response

import (
	"time"

	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	Capacity        int32     `json:"capacity"`
	CurrentBookings int32     `json:"currentBookings"`
	AvailableSpots  int32     `json:"availableSpots"`
	IsOpen          bool      `json:"isOpen"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:              v.ID,
		Date:            v.StartAt.Format("2006-01-02"),
		StartTime:       v.StartAt.Format("15:04"),
		EndTime:         v.EndAt.Format("15:04"),
		StartAt:         v.StartAt,
		EndAt:           v.EndAt,
		Capacity:        v.Capacity,
		CurrentBookings: v.CurrentBookings,
		AvailableSpots:  v.AvailableSpots,
		IsOpen:          v.IsOpen,
		Version:         v.Version,
		CreatedAt:       v.CreatedAt,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	result := make([]*SlotResponse, len(views))
	for i, v := range views {
		result[i] = FromSlotView(v)
	}
	return result
}

type SlotRosterResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	CandidateID    uuid.UUID `json:"candidateId"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	BookedAt       time.Time `json:"bookedAt"`
	Confirmed      bool      `json:"confirmed"`
}

func FromSlotRosterItem(item *queries.SlotRosterItem) *SlotRosterResponse {
	return &SlotRosterResponse{
		BookingID:      item.BookingID,
		CandidateID:    item.CandidateID,
		CandidateName:  item.CandidateName,
		CandidateEmail: item.CandidateEmail,
		BookedAt:       item.BookedAt,
		Confirmed:      item.Confirmed,
	}
}

type GenerateSlotsResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
