package commands

import (
	"context"

	"recruitflow/internal/audit"
	"recruitflow/internal/domain/candidate"
	"recruitflow/internal/domain/user"
	reqdto "recruitflow/internal/handler/dto/request"
	"recruitflow/internal/infra"
	"recruitflow/internal/notify"
	"recruitflow/internal/pkg/errs"
	"recruitflow/internal/pkg/password"
	"recruitflow/internal/usecase/shared"

	"github.com/google/uuid"
)

const tempPasswordLength = 12

type RegisterCandidateResult struct {
	UserID        uuid.UUID
	ApplicationID uuid.UUID
}

type CandidateCommands interface {
	// RegisterCandidate creates the candidate account plus their application
	// and emails a temporary password.
	RegisterCandidate(ctx context.Context, adminID uuid.UUID, req reqdto.RegisterCandidateRequest) (*RegisterCandidateResult, error)
	SetApplicationStatus(ctx context.Context, adminID, applicationID uuid.UUID, status string) error
}

type candidateCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	auditSink  audit.Sink
}

func NewCandidateCommands(uow shared.UnitOfWork, dispatcher notify.Dispatcher, auditSink audit.Sink) CandidateCommands {
	return &candidateCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		auditSink:  auditSink,
	}
}

func (c *candidateCommandsImpl) RegisterCandidate(ctx context.Context, adminID uuid.UUID, req reqdto.RegisterCandidateRequest) (*RegisterCandidateResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tempPassword, err := password.GenerateTemporary(tempPasswordLength)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate temporary password")
	}
	hash, err := password.HashPassword(tempPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash temporary password")
	}

	u := user.NewUser(req.Name, email, req.Phone, hash, user.RoleCandidate)
	app := candidate.NewApplication(u.ID(), req.Department, req.Grade, req.Skills)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateEmail)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}
		if _, err := tx.Applications().Create(ctx, app); err != nil {
			return errs.Mark(err, errs.ErrTransactionFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &adminID,
		Action: "candidate.register",
		Detail: "user " + u.ID().String(),
		IP:     audit.ClientIP(ctx),
	})
	c.dispatcher.CredentialsIssued(req.Name, email.Value(), tempPassword)

	return &RegisterCandidateResult{
		UserID:        u.ID(),
		ApplicationID: app.ID(),
	}, nil
}

func (c *candidateCommandsImpl) SetApplicationStatus(ctx context.Context, adminID, applicationID uuid.UUID, status string) error {
	st, err := candidate.NewStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Applications().SetStatus(ctx, applicationID, st); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCandidateNotFound)
			}
			return errs.Mark(err, errs.ErrTransactionFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.auditSink.Record(ctx, audit.Entry{
		Actor:  &adminID,
		Action: "candidate.set_status",
		Detail: "application " + applicationID.String() + " -> " + st.String(),
		IP:     audit.ClientIP(ctx),
	})

	return nil
}
