package queries

import (
	"context"
	"time"

	"recruitflow/internal/infra"
	"recruitflow/internal/pkg/clock"
	"recruitflow/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListAvailable(ctx context.Context) ([]*SlotView, error)
	ListAll(ctx context.Context, day *time.Time) ([]*SlotView, error)
	Roster(ctx context.Context, slotID uuid.UUID) ([]*SlotRosterItem, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListAvailable(ctx context.Context, at time.Time) ([]*SlotView, error)
	ListAll(ctx context.Context, day *time.Time) ([]*SlotView, error)
	Roster(ctx context.Context, slotID uuid.UUID) ([]*SlotRosterItem, error)
}

type slotQueriesImpl struct {
	readStore SlotReadStore
	clock     clock.Clock
}

func NewSlotQueries(readStore SlotReadStore, clock clock.Clock) SlotQueries {
	return &slotQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSlotNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *slotQueriesImpl) ListAvailable(ctx context.Context) ([]*SlotView, error) {
	return q.readStore.ListAvailable(ctx, q.clock.Now())
}

func (q *slotQueriesImpl) ListAll(ctx context.Context, day *time.Time) ([]*SlotView, error) {
	return q.readStore.ListAll(ctx, day)
}

func (q *slotQueriesImpl) Roster(ctx context.Context, slotID uuid.UUID) ([]*SlotRosterItem, error) {
	// Confirm the slot exists so an unknown ID is not an empty roster.
	if _, err := q.GetByID(ctx, slotID); err != nil {
		return nil, err
	}
	return q.readStore.Roster(ctx, slotID)
}
