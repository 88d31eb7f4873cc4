package response

import (
	"time"

	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	SlotID         uuid.UUID `json:"slotId"`
	CandidateID    uuid.UUID `json:"candidateId"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	BookedAt       time.Time `json:"bookedAt"`
	Confirmed      bool      `json:"confirmed"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		SlotID:         v.SlotID,
		CandidateID:    v.CandidateID,
		CandidateName:  v.CandidateName,
		CandidateEmail: v.CandidateEmail,
		StartAt:        v.StartAt,
		EndAt:          v.EndAt,
		BookedAt:       v.BookedAt,
		Confirmed:      v.Confirmed,
	}
}
