package shared

import (
	"context"
	"time"

	"recruitflow/internal/domain/booking"
	"recruitflow/internal/domain/candidate"
	"recruitflow/internal/domain/slot"
	"recruitflow/internal/domain/user"
	"recruitflow/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Applications() ApplicationRepository
	Users() UserRepository
	DB() db.DBTX
}

type SlotRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*slot.InterviewSlot, error)
	Create(ctx context.Context, s *slot.InterviewSlot) (uuid.UUID, error)
	HasOverlap(ctx context.Context, w slot.Window) (bool, error)
	IncrementBookings(ctx context.Context, id uuid.UUID) error
	DecrementBookings(ctx context.Context, id uuid.UUID) error
	SetOpen(ctx context.Context, id uuid.UUID, open bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	CloseStarted(ctx context.Context, now time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.SlotBooking) (uuid.UUID, error)
	FindByCandidate(ctx context.Context, candidateID uuid.UUID) (*booking.SlotBooking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.SlotBooking, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, a *candidate.Application) (uuid.UUID, error)
	SetStatusByUser(ctx context.Context, userID uuid.UUID, status candidate.Status) error
	SetStatus(ctx context.Context, id uuid.UUID, status candidate.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
