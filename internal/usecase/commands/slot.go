package commands

import (
	"context"
	"strconv"

	"recruitflow/internal/audit"
	"recruitflow/internal/domain/slot"
	reqdto "recruitflow/internal/handler/dto/request"
	"recruitflow/internal/infra"
	"recruitflow/internal/pkg/clock"
	"recruitflow/internal/pkg/errs"
	"recruitflow/internal/usecase/queries"
	"recruitflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type GenerateSlotsResult struct {
	Created int
	Skipped int
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, adminID uuid.UUID, req reqdto.CreateSlotRequest) (*queries.SlotView, error)
	// GenerateSlots carves a working window into equal slots, skipping
	// sub-windows that overlap existing slots.
	GenerateSlots(ctx context.Context, adminID uuid.UUID, req reqdto.GenerateSlotsRequest) (*GenerateSlotsResult, error)
	SetOpen(ctx context.Context, adminID, slotID uuid.UUID, open bool) error
	// DeleteSlot removes a slot that has no bookings.
	DeleteSlot(ctx context.Context, adminID, slotID uuid.UUID) error
}

type slotCommandsImpl struct {
	uow       shared.UnitOfWork
	reads     queries.SlotReadStore
	auditSink audit.Sink
	clock     clock.Clock
}

func NewSlotCommands(uow shared.UnitOfWork, reads queries.SlotReadStore, auditSink audit.Sink, clock clock.Clock) SlotCommands {
	return &slotCommandsImpl{
		uow:       uow,
		reads:     reads,
		auditSink: auditSink,
		clock:     clock,
	}
}

func (c *slotCommandsImpl) CreateSlot(ctx context.Context, adminID uuid.UUID, req reqdto.CreateSlotRequest) (*queries.SlotView, error) {
	window, err := slot.NewWindow(req.StartAt, req.EndAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	s, err := slot.NewInterviewSlot(window, req.Capacity, adminID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var slotID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Slots().Create(ctx, s)
		if err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}
		slotID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.reads.FindByID(ctx, slotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTransactionFailed)
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &adminID,
		Action: "slot.create",
		Detail: "slot " + slotID.String(),
		IP:     audit.ClientIP(ctx),
	})

	return view, nil
}

func (c *slotCommandsImpl) GenerateSlots(ctx context.Context, adminID uuid.UUID, req reqdto.GenerateSlotsRequest) (*GenerateSlotsResult, error) {
	window, err := slot.NewWindow(req.StartAt, req.EndAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	windows, err := window.Split(req.Interval())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := c.clock.Now()
	result := &GenerateSlotsResult{}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, w := range windows {
			occupied, err := tx.Slots().HasOverlap(ctx, w)
			if err != nil {
				return errs.Mark(err, errs.ErrTransactionFailed)
			}
			if occupied {
				result.Skipped++
				continue
			}

			s, err := slot.NewInterviewSlot(w, req.Capacity, adminID, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if _, err := tx.Slots().Create(ctx, s); err != nil {
				return errs.Mark(err, errs.ErrTransactionFailed)
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &adminID,
		Action: "slot.generate",
		Detail: "created " + strconv.Itoa(result.Created) + " skipped " + strconv.Itoa(result.Skipped),
		IP:     audit.ClientIP(ctx),
	})

	return result, nil
}

func (c *slotCommandsImpl) SetOpen(ctx context.Context, adminID, slotID uuid.UUID, open bool) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().SetOpen(ctx, slotID, open); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrSlotNotFound)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	action := "slot.close"
	if open {
		action = "slot.open"
	}
	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &adminID,
		Action: action,
		Detail: "slot " + slotID.String(),
		IP:     audit.ClientIP(ctx),
	})

	return nil
}

func (c *slotCommandsImpl) DeleteSlot(ctx context.Context, adminID, slotID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByIDForUpdate(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrSlotNotFound)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		if s.HasBookings() {
			return errs.ErrSlotHasBookings
		}

		if err := tx.Slots().Delete(ctx, slotID); err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &adminID,
		Action: "slot.delete",
		Detail: "slot " + slotID.String(),
		IP:     audit.ClientIP(ctx),
	})

	return nil
}
