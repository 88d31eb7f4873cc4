package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers. Handlers translate
// these into distinct HTTP responses; storage detail never crosses this line.
var (
	// Slot errors
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotClosed      = errors.New("slot closed")
	ErrSlotFull        = errors.New("slot full")
	ErrSlotInPast      = errors.New("slot in past")
	ErrSlotHasBookings = errors.New("slot has bookings")

	// Booking errors
	ErrAlreadyBooked            = errors.New("candidate already booked")
	ErrNoBookingFound           = errors.New("no booking found")
	ErrCancellationWindowClosed = errors.New("cancellation window closed")
	ErrBookingNotFound          = errors.New("booking not found")

	// Candidate errors
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrDuplicateEmail    = errors.New("email already registered")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrTransactionFailed = errors.New("transaction failed")
)
