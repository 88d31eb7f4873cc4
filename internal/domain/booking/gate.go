package booking

import (
	"time"

	"recruitflow/internal/domain/slot"
	"recruitflow/internal/pkg/errs"
)

// Eligibility gate: pure predicates the transaction manager consults after it
// holds the slot row lock. No I/O and no locking here; callers pass fetched
// state and the current time.

// CheckClaimable re-validates a locked slot for a new claim. The checks are
// ordered so the caller gets the most actionable rejection first.
func CheckClaimable(s *slot.InterviewSlot, at time.Time) error {
	if !s.IsOpen() {
		return errs.ErrSlotClosed
	}
	if s.IsFull() {
		return errs.ErrSlotFull
	}
	if !s.Window().StartsAfter(at) {
		return errs.ErrSlotInPast
	}
	return nil
}

// CheckCancelable rejects candidate-initiated cancellation inside the blackout
// window before the slot's start. Administrator cancellation bypasses this.
func CheckCancelable(s *slot.InterviewSlot, at time.Time, blackout time.Duration) error {
	if s.Window().Start().Sub(at) < blackout {
		return errs.ErrCancellationWindowClosed
	}
	return nil
}
