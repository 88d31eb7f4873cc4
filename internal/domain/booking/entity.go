package booking

import (
	"time"

	"github.com/google/uuid"
)

// SlotBooking is one candidate's claim on one interview slot. The database
// enforces at most one row per candidate (unique constraint on candidate id).
type SlotBooking struct {
	id          uuid.UUID
	slotID      uuid.UUID
	candidateID uuid.UUID
	bookedAt    time.Time
	confirmed   bool
}

func NewSlotBooking(slotID, candidateID uuid.UUID, bookedAt time.Time) *SlotBooking {
	return &SlotBooking{
		id:          uuid.New(),
		slotID:      slotID,
		candidateID: candidateID,
		bookedAt:    bookedAt,
		confirmed:   true,
	}
}

func Reconstruct(id, slotID, candidateID uuid.UUID, bookedAt time.Time, confirmed bool) *SlotBooking {
	return &SlotBooking{
		id:          id,
		slotID:      slotID,
		candidateID: candidateID,
		bookedAt:    bookedAt,
		confirmed:   confirmed,
	}
}

func (b *SlotBooking) ID() uuid.UUID          { return b.id }
func (b *SlotBooking) SlotID() uuid.UUID      { return b.slotID }
func (b *SlotBooking) CandidateID() uuid.UUID { return b.candidateID }
func (b *SlotBooking) BookedAt() time.Time    { return b.bookedAt }
func (b *SlotBooking) Confirmed() bool        { return b.confirmed }
