package repository

import (
	"context"
	"time"

	"recruitflow/internal/domain/slot"
	"recruitflow/internal/infra"
	"recruitflow/internal/infra/db"
	"recruitflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const slotColumns = `id, start_at, end_at, capacity, current_bookings, is_open, version, created_by, created_at`

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

func scanSlot(row pgx.Row) (*slot.InterviewSlot, error) {
	var (
		id              uuid.UUID
		startAt         time.Time
		endAt           time.Time
		capacity        int
		currentBookings int
		isOpen          bool
		version         int64
		createdBy       pgtype.UUID
		createdAt       pgtype.Timestamptz
	)
	if err := row.Scan(&id, &startAt, &endAt, &capacity, &currentBookings, &isOpen, &version, &createdBy, &createdAt); err != nil {
		return nil, err
	}

	return slot.Reconstruct(
		id,
		slot.ReconstructWindow(startAt, endAt),
		capacity,
		currentBookings,
		isOpen,
		version,
		pgconv.UUIDPtrFromPgtype(createdBy),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

// FindByIDForUpdate locks the slot row for the rest of the transaction. Every
// mutation of the booking counter goes through this lock.
func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*slot.InterviewSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM interview_slots WHERE id = $1 FOR UPDATE`

	s, err := scanSlot(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}

	return s, nil
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.InterviewSlot) (uuid.UUID, error) {
	query := `
		INSERT INTO interview_slots (id, start_at, end_at, capacity, current_bookings, is_open, version, created_by)
		VALUES ($1, $2, $3, $4, 0, $5, 0, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		s.ID(),
		s.Window().Start(),
		s.Window().End(),
		s.Capacity(),
		s.IsOpen(),
		pgconv.UUIDPtrToPgtype(s.CreatedBy()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create slot", err)
	}

	return id, nil
}

// HasOverlap reports whether any slot intersects the window. Bulk generation
// uses it to skip sub-windows already occupied.
func (r *SlotRepository) HasOverlap(ctx context.Context, w slot.Window) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM interview_slots WHERE start_at < $2 AND end_at > $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, w.Start(), w.End()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check slot overlap", err)
	}

	return exists, nil
}

// IncrementBookings bumps the counter and the version under the caller's row
// lock. The capacity check constraint is a backstop; the gate has already
// rejected a full slot.
func (r *SlotRepository) IncrementBookings(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE interview_slots
		SET current_bookings = current_bookings + 1, version = version + 1
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment slot bookings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

// DecrementBookings floors the counter at zero so a stray double cancel can
// never drive it negative.
func (r *SlotRepository) DecrementBookings(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE interview_slots
		SET current_bookings = GREATEST(current_bookings - 1, 0), version = version + 1
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement slot bookings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SlotRepository) SetOpen(ctx context.Context, id uuid.UUID, open bool) error {
	query := `UPDATE interview_slots SET is_open = $2, version = version + 1 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, open)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot open flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

// Delete removes the slot only while it has no bookings. A zero row count on
// an existing slot means the guard fired.
func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM interview_slots WHERE id = $1 AND current_bookings = 0`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not deleted", nil, infra.KindNotFound)
	}

	return nil
}

// CloseStarted flips is_open off for slots whose start time has passed.
// Invoked by the janitor job, outside any booking transaction.
func (r *SlotRepository) CloseStarted(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE interview_slots SET is_open = FALSE, version = version + 1 WHERE is_open AND start_at <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to close started slots", err)
	}

	return tag.RowsAffected(), nil
}
