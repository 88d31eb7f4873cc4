package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrWindowInPast    = errors.New("window start must be in the future")
)

// InterviewSlot is the capacity ledger: a bounded time window candidates book
// against. currentBookings and version are mutated only by the booking
// transaction manager, under the slot's row lock; everything here is a pure
// read over a fetched snapshot.
type InterviewSlot struct {
	id              uuid.UUID
	window          Window
	capacity        int
	currentBookings int
	isOpen          bool
	version         int64
	createdBy       *uuid.UUID
	createdAt       time.Time
}

func NewInterviewSlot(window Window, capacity int, createdBy uuid.UUID, now time.Time) (*InterviewSlot, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if !window.StartsAfter(now) {
		return nil, ErrWindowInPast
	}

	creator := createdBy
	return &InterviewSlot{
		id:        uuid.New(),
		window:    window,
		capacity:  capacity,
		isOpen:    true,
		createdBy: &creator,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	window Window,
	capacity, currentBookings int,
	isOpen bool,
	version int64,
	createdBy *uuid.UUID,
	createdAt time.Time,
) *InterviewSlot {
	return &InterviewSlot{
		id:              id,
		window:          window,
		capacity:        capacity,
		currentBookings: currentBookings,
		isOpen:          isOpen,
		version:         version,
		createdBy:       createdBy,
		createdAt:       createdAt,
	}
}

// AvailableSpots never reports negative even if the persisted counter is
// momentarily inconsistent.
func (s *InterviewSlot) AvailableSpots() int {
	if s.currentBookings >= s.capacity {
		return 0
	}
	return s.capacity - s.currentBookings
}

func (s *InterviewSlot) IsFull() bool {
	return s.currentBookings >= s.capacity
}

func (s *InterviewSlot) IsBookable(at time.Time) bool {
	return s.isOpen && !s.IsFull() && s.window.StartsAfter(at)
}

func (s *InterviewSlot) HasBookings() bool {
	return s.currentBookings > 0
}

func (s *InterviewSlot) ID() uuid.UUID         { return s.id }
func (s *InterviewSlot) Window() Window        { return s.window }
func (s *InterviewSlot) Capacity() int         { return s.capacity }
func (s *InterviewSlot) CurrentBookings() int  { return s.currentBookings }
func (s *InterviewSlot) IsOpen() bool          { return s.isOpen }
func (s *InterviewSlot) Version() int64        { return s.version }
func (s *InterviewSlot) CreatedBy() *uuid.UUID { return s.createdBy }
func (s *InterviewSlot) CreatedAt() time.Time  { return s.createdAt }
