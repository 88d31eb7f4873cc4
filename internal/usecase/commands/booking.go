package commands

import (
	"context"

	"recruitflow/internal/audit"
	"recruitflow/internal/domain/booking"
	"recruitflow/internal/domain/candidate"
	"recruitflow/internal/domain/slot"
	"recruitflow/internal/infra"
	"recruitflow/internal/notify"
	"recruitflow/internal/pkg/clock"
	"recruitflow/internal/pkg/config"
	"recruitflow/internal/pkg/errs"
	"recruitflow/internal/usecase/queries"
	"recruitflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// ClaimSlot books the slot for the candidate. At most one booking per
	// candidate; capacity is enforced under the slot's row lock.
	ClaimSlot(ctx context.Context, candidateID, slotID uuid.UUID) (*queries.BookingView, error)
	// CancelOwnBooking releases the candidate's booking, honoring the
	// pre-interview blackout window.
	CancelOwnBooking(ctx context.Context, candidateID uuid.UUID) error
	// AdminCancelBooking releases any booking by ID. The blackout window
	// does not apply.
	AdminCancelBooking(ctx context.Context, adminID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	reads      queries.BookingReadStore
	dispatcher notify.Dispatcher
	auditSink  audit.Sink
	clock      clock.Clock
	blackout   config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	reads queries.BookingReadStore,
	dispatcher notify.Dispatcher,
	auditSink audit.Sink,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		reads:      reads,
		dispatcher: dispatcher,
		auditSink:  auditSink,
		clock:      clock,
		blackout:   cfg,
	}
}

func (c *bookingCommandsImpl) ClaimSlot(ctx context.Context, candidateID, slotID uuid.UUID) (*queries.BookingView, error) {
	now := c.clock.Now()

	// Cheap rejection before taking any lock. The unique constraint on
	// candidate_id still backstops a concurrent duplicate claim.
	if _, err := c.reads.FindByCandidate(ctx, candidateID); err == nil {
		return nil, errs.ErrAlreadyBooked
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrTransactionFailed)
	}

	var bookingID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByIDForUpdate(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrSlotNotFound)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		if err := booking.CheckClaimable(s, now); err != nil {
			return err
		}

		b := booking.NewSlotBooking(slotID, candidateID, now)
		id, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyBooked)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrSlotNotFound)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		if err := tx.Slots().IncrementBookings(ctx, slotID); err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		if err := tx.Applications().SetStatusByUser(ctx, candidateID, candidate.StatusSlotSelected); err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.reads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTransactionFailed)
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &candidateID,
		Action: "booking.claim",
		Detail: "slot " + slotID.String(),
		IP:     audit.ClientIP(ctx),
	})
	c.dispatcher.BookingConfirmed(noticeFromView(view))

	return view, nil
}

func (c *bookingCommandsImpl) CancelOwnBooking(ctx context.Context, candidateID uuid.UUID) error {
	now := c.clock.Now()

	// Snapshot for the notification before the rows disappear.
	view, err := c.reads.FindByCandidate(ctx, candidateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNoBookingFound)
		}
		return errs.Mark(err, errs.ErrTransactionFailed)
	}

	err = c.cancel(ctx, view, func(s *slot.InterviewSlot) error {
		return booking.CheckCancelable(s, now, c.blackout.CancelBlackout)
	})
	if err != nil {
		return err
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &candidateID,
		Action: "booking.cancel",
		Detail: "slot " + view.SlotID.String(),
		IP:     audit.ClientIP(ctx),
	})
	c.dispatcher.BookingCanceled(noticeFromView(view))

	return nil
}

func (c *bookingCommandsImpl) AdminCancelBooking(ctx context.Context, adminID, bookingID uuid.UUID) error {
	view, err := c.reads.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrTransactionFailed)
	}

	if err := c.cancel(ctx, view, nil); err != nil {
		return err
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &adminID,
		Action: "booking.admin_cancel",
		Detail: "booking " + bookingID.String() + " slot " + view.SlotID.String(),
		IP:     audit.ClientIP(ctx),
	})
	c.dispatcher.BookingCanceled(noticeFromView(view))

	return nil
}

// cancel runs the shared release path under the slot row lock. gate is nil
// when the caller bypasses the blackout check.
func (c *bookingCommandsImpl) cancel(ctx context.Context, view *queries.BookingView, gate func(*slot.InterviewSlot) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, view.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNoBookingFound)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		s, err := tx.Slots().FindByIDForUpdate(ctx, b.SlotID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrSlotNotFound)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		if gate != nil {
			if err := gate(s); err != nil {
				return err
			}
		}

		if err := tx.Bookings().DeleteByID(ctx, b.ID()); err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		if err := tx.Slots().DecrementBookings(ctx, b.SlotID()); err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		if err := tx.Applications().SetStatusByUser(ctx, b.CandidateID(), candidate.StatusPending); err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}

		return nil
	})
}

func noticeFromView(v *queries.BookingView) notify.BookingNotice {
	return notify.BookingNotice{
		CandidateName:  v.CandidateName,
		CandidateEmail: v.CandidateEmail,
		CandidatePhone: v.CandidatePhone,
		StartAt:        v.StartAt,
		EndAt:          v.EndAt,
	}
}
