package queries

import (
	"context"

	"recruitflow/internal/infra"
	"recruitflow/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetOwn(ctx context.Context, candidateID uuid.UUID) (*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCandidate(ctx context.Context, candidateID uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetOwn(ctx context.Context, candidateID uuid.UUID) (*BookingView, error) {
	v, err := q.readStore.FindByCandidate(ctx, candidateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNoBookingFound)
		}
		return nil, err
	}
	return v, nil
}
