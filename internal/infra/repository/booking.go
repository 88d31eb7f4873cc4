package repository

import (
	"context"
	"time"

	"recruitflow/internal/domain/booking"
	"recruitflow/internal/infra"
	"recruitflow/internal/infra/db"
	"recruitflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, slot_id, candidate_id, booked_at, confirmed`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func scanBooking(row pgx.Row) (*booking.SlotBooking, error) {
	var (
		id          uuid.UUID
		slotID      uuid.UUID
		candidateID uuid.UUID
		bookedAt    time.Time
		confirmed   bool
	)
	if err := row.Scan(&id, &slotID, &candidateID, &bookedAt, &confirmed); err != nil {
		return nil, err
	}

	return booking.Reconstruct(id, slotID, candidateID, bookedAt, confirmed), nil
}

// Create inserts the booking row. The unique constraint on candidate_id turns
// a concurrent duplicate claim into a duplicate-key error here.
func (r *BookingRepository) Create(ctx context.Context, b *booking.SlotBooking) (uuid.UUID, error) {
	query := `
		INSERT INTO slot_bookings (id, slot_id, candidate_id, booked_at, confirmed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		b.ID(),
		b.SlotID(),
		b.CandidateID(),
		b.BookedAt(),
		b.Confirmed(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindByCandidate(ctx context.Context, candidateID uuid.UUID) (*booking.SlotBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM slot_bookings WHERE candidate_id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, candidateID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by candidate", err)
	}

	return b, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.SlotBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM slot_bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return b, nil
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM slot_bookings WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}
