package email

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// Message is one outbound email
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendGridSender delivers messages through the SendGrid v3 API
type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
	logger *zap.Logger
}

// NewSendGridSender creates a sender. It returns nil when no API key is set,
// which callers treat as "email not configured".
func NewSendGridSender(cfg *config.SendGridConfig, logger *zap.Logger) *SendGridSender {
	if cfg == nil || cfg.APIKey == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SendGridSender{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail("Meeting Actions", cfg.FromEmail),
		logger: logger,
	}
}

// Send delivers every message, retrying transient (5xx / transport) failures
func (s *SendGridSender) Send(ctx context.Context, messages []Message) error {
	for _, m := range messages {
		msg := mail.NewV3MailInit(
			s.from,
			m.Subject,
			mail.NewEmail("", m.To),
			mail.NewContent("text/plain", m.Text),
			mail.NewContent("text/html", m.HTML),
		)

		send := func() error {
			resp, err := s.client.SendWithContext(ctx, msg)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 500 {
				return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
			}
			if resp.StatusCode >= 400 {
				return backoff.Permanent(fmt.Errorf("sendgrid API error: status %d: %s", resp.StatusCode, resp.Body))
			}
			return nil
		}

		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = 500 * time.Millisecond
		bo.MaxElapsedTime = 10 * time.Second

		if err := backoff.Retry(send, backoff.WithContext(bo, ctx)); err != nil {
			s.logger.Error("email.send_failed", zap.String("to", m.To), zap.Error(err))
			return fmt.Errorf("failed to send email: %w", err)
		}
	}

	s.logger.Info("email.sent", zap.Int("count", len(messages)))
	return nil
}
