package notify

import (
	"context"
	"log/slog"
	"time"

	"recruitflow/internal/pkg/config"
)

// BookingNotice carries everything the outbound channels need about a booking
// outcome. Built from committed state; notification failure never unwinds the
// booking itself.
type BookingNotice struct {
	CandidateName  string
	CandidateEmail string
	CandidatePhone *string
	StartAt        time.Time
	EndAt          time.Time
}

type EmailSender interface {
	Send(ctx context.Context, toName, toEmail, subject, plainText, html string) error
}

type SMSSender interface {
	Send(ctx context.Context, toNumber, body string) error
}

type Dispatcher interface {
	BookingConfirmed(n BookingNotice)
	BookingCanceled(n BookingNotice)
	CredentialsIssued(name, email, tempPassword string)
}

type dispatcherImpl struct {
	email       EmailSender
	sms         SMSSender
	sendTimeout time.Duration
}

func NewDispatcher(cfg config.NotifyConfig, email EmailSender, sms SMSSender) Dispatcher {
	if !cfg.Enabled {
		return NopDispatcher{}
	}
	return &dispatcherImpl{
		email:       email,
		sms:         sms,
		sendTimeout: cfg.SendTimeout,
	}
}

func (d *dispatcherImpl) BookingConfirmed(n BookingNotice) {
	subject := "Interview slot confirmed"
	body := "Hi " + n.CandidateName + ",\n\nYour interview is confirmed for " +
		n.StartAt.Format("Mon, 02 Jan 2006 15:04") + " to " + n.EndAt.Format("15:04") + "."
	d.send(n, subject, body)
}

func (d *dispatcherImpl) BookingCanceled(n BookingNotice) {
	subject := "Interview slot canceled"
	body := "Hi " + n.CandidateName + ",\n\nYour interview on " +
		n.StartAt.Format("Mon, 02 Jan 2006 15:04") + " has been canceled. You may book a new slot."
	d.send(n, subject, body)
}

func (d *dispatcherImpl) CredentialsIssued(name, email, tempPassword string) {
	subject := "Your interview booking account"
	body := "Hi " + name + ",\n\nAn account has been created for you. Temporary password: " +
		tempPassword + "\nPlease sign in and pick an interview slot."

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		defer cancel()

		if err := d.email.Send(ctx, name, email, subject, body, ""); err != nil {
			slog.Warn("failed to send credentials email", "email", email, "error", err.Error())
		}
	}()
}

// send fans out to email and SMS in the background. Each channel logs and
// swallows its own failure.
func (d *dispatcherImpl) send(n BookingNotice, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		defer cancel()

		if err := d.email.Send(ctx, n.CandidateName, n.CandidateEmail, subject, body, ""); err != nil {
			slog.Warn("failed to send booking email", "email", n.CandidateEmail, "error", err.Error())
		}

		if n.CandidatePhone != nil {
			if err := d.sms.Send(ctx, *n.CandidatePhone, subject); err != nil {
				slog.Warn("failed to send booking SMS", "phone", *n.CandidatePhone, "error", err.Error())
			}
		}
	}()
}

// NopDispatcher drops every notice. Used when outbound channels are disabled
// and in tests.
type NopDispatcher struct{}

func (NopDispatcher) BookingConfirmed(BookingNotice)   {}
func (NopDispatcher) BookingCanceled(BookingNotice)    {}
func (NopDispatcher) CredentialsIssued(_, _, _ string) {}
