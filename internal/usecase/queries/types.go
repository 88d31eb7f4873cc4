package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID              uuid.UUID `json:"id"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	Capacity        int32     `json:"capacity"`
	CurrentBookings int32     `json:"current_bookings"`
	AvailableSpots  int32     `json:"available_spots"`
	IsOpen          bool      `json:"is_open"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
}

type SlotRosterItem struct {
	BookingID      uuid.UUID `json:"booking_id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	BookedAt       time.Time `json:"booked_at"`
	Confirmed      bool      `json:"confirmed"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	SlotID         uuid.UUID `json:"slot_id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	CandidatePhone *string   `json:"candidate_phone,omitempty"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	BookedAt       time.Time `json:"booked_at"`
	Confirmed      bool      `json:"confirmed"`
}

type CandidateView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Department *string   `json:"department,omitempty"`
	Grade      *string   `json:"grade,omitempty"`
	Skills     *string   `json:"skills,omitempty"`
	Status     *string   `json:"status,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
