package notify

import (
	"context"
	"fmt"

	"recruitflow/internal/pkg/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridSender struct {
	client   *sendgrid.Client
	fromName string
	fromMail string
}

func NewSendGridSender(cfg config.NotifyConfig) *SendGridSender {
	return &SendGridSender{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromName: cfg.FromName,
		fromMail: cfg.FromEmail,
	}
}

func (s *SendGridSender) Send(ctx context.Context, toName, toEmail, subject, plainText, html string) error {
	from := mail.NewEmail(s.fromName, s.fromMail)
	to := mail.NewEmail(toName, toEmail)
	if html == "" {
		html = plainText
	}
	message := mail.NewSingleEmail(from, subject, to, plainText, html)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}
