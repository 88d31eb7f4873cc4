package readstore

import (
	"context"
	"time"

	"recruitflow/internal/infra"
	"recruitflow/internal/infra/db"
	"recruitflow/internal/pkg/pgconv"
	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const slotViewColumns = `
	id, start_at, end_at, capacity, current_bookings,
	GREATEST(capacity - current_bookings, 0) AS available_spots,
	is_open, version, created_at`

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var (
		v         queries.SlotView
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.StartAt, &v.EndAt, &v.Capacity, &v.CurrentBookings,
		&v.AvailableSpots, &v.IsOpen, &v.Version, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &v, nil
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	query := `SELECT ` + slotViewColumns + ` FROM interview_slots WHERE id = $1`

	v, err := scanSlotView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return v, nil
}

// ListAvailable returns open, not-yet-started slots with spare capacity,
// soonest first.
func (r *SlotReadStore) ListAvailable(ctx context.Context, at time.Time) ([]*queries.SlotView, error) {
	query := `
		SELECT ` + slotViewColumns + `
		FROM interview_slots
		WHERE is_open AND start_at > $1 AND current_bookings < capacity
		ORDER BY start_at, id`

	rows, err := r.db.Query(ctx, query, at)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

// ListAll returns every slot, optionally restricted to one calendar day.
func (r *SlotReadStore) ListAll(ctx context.Context, day *time.Time) ([]*queries.SlotView, error) {
	query := `
		SELECT ` + slotViewColumns + `
		FROM interview_slots
		WHERE $1::timestamptz IS NULL OR (start_at >= $1 AND start_at < $1 + INTERVAL '1 day')
		ORDER BY start_at, id`

	var dayArg pgtype.Timestamptz
	if day != nil {
		dayArg = pgconv.TimeToPgtype(*day)
	}

	rows, err := r.db.Query(ctx, query, dayArg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

func collectSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	var result []*queries.SlotView
	for rows.Next() {
		v, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return result, nil
}

// Roster lists the bookings on one slot with candidate identity joined in.
func (r *SlotReadStore) Roster(ctx context.Context, slotID uuid.UUID) ([]*queries.SlotRosterItem, error) {
	query := `
		SELECT b.id, u.id, u.name, u.email, b.booked_at, b.confirmed
		FROM slot_bookings b
		JOIN users u ON u.id = b.candidate_id
		WHERE b.slot_id = $1
		ORDER BY b.booked_at, b.id`

	rows, err := r.db.Query(ctx, query, slotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot roster", err)
	}
	defer rows.Close()

	var result []*queries.SlotRosterItem
	for rows.Next() {
		var item queries.SlotRosterItem
		var bookedAt pgtype.Timestamptz
		err := rows.Scan(
			&item.BookingID, &item.CandidateID, &item.CandidateName,
			&item.CandidateEmail, &bookedAt, &item.Confirmed,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan roster row", err)
		}
		item.BookedAt = pgconv.TimeFromPgtype(bookedAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate roster rows", err)
	}

	return result, nil
}
