//go:build unit || e2e

package builder

import (
	"time"

	"recruitflow/internal/domain/booking"
	reqdto "recruitflow/internal/handler/dto/request"
	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	SlotID         uuid.UUID
	CandidateID    uuid.UUID
	CandidateName  string
	CandidateEmail string
	CandidatePhone *string
	StartAt        time.Time
	EndAt          time.Time
	BookedAt       time.Time
	Confirmed      bool
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().UTC().Truncate(time.Hour).Add(48 * time.Hour)
	phone := "+81-90-0000-0000"
	return &BookingBuilder{
		ID:             uuid.New(),
		SlotID:         uuid.New(),
		CandidateID:    uuid.New(),
		CandidateName:  "Taro Yamada",
		CandidateEmail: "candidate@example.com",
		CandidatePhone: &phone,
		StartAt:        start,
		EndAt:          start.Add(time.Hour),
		BookedAt:       time.Now().UTC(),
		Confirmed:      true,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.SlotBooking {
	return booking.Reconstruct(b.ID, b.SlotID, b.CandidateID, b.BookedAt, b.Confirmed)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		SlotID:         b.SlotID,
		CandidateID:    b.CandidateID,
		CandidateName:  b.CandidateName,
		CandidateEmail: b.CandidateEmail,
		CandidatePhone: b.CandidatePhone,
		StartAt:        b.StartAt,
		EndAt:          b.EndAt,
		BookedAt:       b.BookedAt,
		Confirmed:      b.Confirmed,
	}
}

func (b *BookingBuilder) BuildClaimRequestDTO() reqdto.ClaimSlotRequest {
	return reqdto.ClaimSlotRequest{SlotID: b.SlotID}
}
