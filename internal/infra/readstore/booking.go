package readstore

import (
	"context"

	"recruitflow/internal/infra"
	"recruitflow/internal/infra/db"
	"recruitflow/internal/pkg/pgconv"
	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewQuery = `
	SELECT b.id, b.slot_id, b.candidate_id, u.name, u.email, u.phone,
	       s.start_at, s.end_at, b.booked_at, b.confirmed
	FROM slot_bookings b
	JOIN users u ON u.id = b.candidate_id
	JOIN interview_slots s ON s.id = b.slot_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v        queries.BookingView
		phone    pgtype.Text
		bookedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.SlotID, &v.CandidateID, &v.CandidateName, &v.CandidateEmail,
		&phone, &v.StartAt, &v.EndAt, &bookedAt, &v.Confirmed,
	)
	if err != nil {
		return nil, err
	}
	v.CandidatePhone = pgconv.StringPtrFromPgtype(phone)
	v.BookedAt = pgconv.TimeFromPgtype(bookedAt)
	return &v, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := bookingViewQuery + ` WHERE b.id = $1`

	v, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return v, nil
}

func (r *BookingReadStore) FindByCandidate(ctx context.Context, candidateID uuid.UUID) (*queries.BookingView, error) {
	query := bookingViewQuery + ` WHERE b.candidate_id = $1`

	v, err := scanBookingView(r.db.QueryRow(ctx, query, candidateID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by candidate", err)
	}

	return v, nil
}
