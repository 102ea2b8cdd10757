package share

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/internal/domain/repositories"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/email"
	ucerrors "github.com/johnquangdev/meeting-actions/internal/usecase/errors"
)

// DefaultSubject is used when a request carries no subject
const DefaultSubject = "Meeting Action Items"

const quotaKeyPrefix = "email:quota:"

// quotaKeyTTL outlives the UTC day so late increments never recreate a fresh key
const quotaKeyTTL = 48 * time.Hour

// Sender delivers rendered emails
type Sender interface {
	Send(ctx context.Context, messages []email.Message) error
}

// EmailRequest is a request to email action items
type EmailRequest struct {
	Actions    []entities.ActionItem
	Recipients []string
	Subject    string
	Message    string
}

// Quota is the daily email allowance
type Quota struct {
	Available bool
	Limit     int
	Used      int
	Remaining int
	ResetDate string
}

// EmailService sends action items by email under a daily quota
type EmailService struct {
	sender  Sender
	counter repositories.CounterStore
	limit   int
	now     func() time.Time
	logger  *zap.Logger
}

// NewEmailService creates an email service. A nil sender means email is not configured.
func NewEmailService(sender Sender, counter repositories.CounterStore, dailyLimit int, logger *zap.Logger) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{
		sender:  sender,
		counter: counter,
		limit:   dailyLimit,
		now:     time.Now,
		logger:  logger,
	}
}

// Available reports whether email delivery is configured
func (s *EmailService) Available() bool {
	return s.sender != nil
}

func (s *EmailService) quotaKey() string {
	return quotaKeyPrefix + s.now().UTC().Format("2006-01-02")
}

// Quota returns today's usage
func (s *EmailService) Quota(ctx context.Context) (*Quota, error) {
	if !s.Available() {
		return &Quota{Available: false}, nil
	}
	used, err := s.counter.Count(ctx, s.quotaKey())
	if err != nil {
		return nil, fmt.Errorf("failed to read email quota: %w", err)
	}
	remaining := s.limit - int(used)
	if remaining < 0 {
		remaining = 0
	}
	return &Quota{
		Available: true,
		Limit:     s.limit,
		Used:      s.limit - remaining,
		Remaining: remaining,
		ResetDate: s.now().UTC().Format("2006-01-02"),
	}, nil
}

// Send renders the actions and mails them to every recipient. Quota is
// reserved before sending and released again if delivery fails.
func (s *EmailService) Send(ctx context.Context, req EmailRequest) (int, error) {
	if len(req.Actions) == 0 {
		return 0, ucerrors.ErrNoActions
	}
	if len(req.Recipients) == 0 {
		return 0, ucerrors.ErrNoRecipients
	}
	if !s.Available() {
		return 0, ucerrors.ErrEmailUnavailable
	}

	key := s.quotaKey()
	n := int64(len(req.Recipients))

	used, err := s.counter.Count(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to read email quota: %w", err)
	}
	if used >= int64(s.limit) {
		return 0, fmt.Errorf("%w (%d emails/day), please try again tomorrow", ucerrors.ErrEmailQuotaExceeded, s.limit)
	}

	total, err := s.counter.IncrBy(ctx, key, n, quotaKeyTTL)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve email quota: %w", err)
	}
	if total > int64(s.limit) {
		s.release(ctx, key, n)
		remaining := int64(s.limit) - (total - n)
		if remaining < 0 {
			remaining = 0
		}
		return 0, fmt.Errorf("%w: cannot send to %d recipients, only %d emails remaining today",
			ucerrors.ErrTooManyRecipients, n, remaining)
	}

	html, text, err := Render(req.Actions, req.Message)
	if err != nil {
		s.release(ctx, key, n)
		return 0, err
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = DefaultSubject
	}

	messages := make([]email.Message, 0, len(req.Recipients))
	for _, to := range req.Recipients {
		messages = append(messages, email.Message{To: to, Subject: subject, HTML: html, Text: text})
	}

	if err := s.sender.Send(ctx, messages); err != nil {
		s.release(ctx, key, n)
		return 0, err
	}

	s.logger.Info("share.email_sent",
		zap.Int("recipients", len(messages)),
		zap.Int64("daily_count", total),
		zap.Int("daily_limit", s.limit),
	)
	return len(messages), nil
}

func (s *EmailService) release(ctx context.Context, key string, n int64) {
	if _, err := s.counter.IncrBy(context.WithoutCancel(ctx), key, -n, quotaKeyTTL); err != nil {
		s.logger.Warn("share.quota_release_failed", zap.String("key", key), zap.Error(err))
	}
}

var emailTemplate = template.Must(template.New("actions").Parse(`<html>
  <body>
    <h2>Meeting Action Items</h2>
    {{- if .Message}}
    <p>{{.Message}}</p>
    {{- end}}
    <p>Total actions: {{len .Actions}}</p>
    <table border="1" cellpadding="10" cellspacing="0" style="border-collapse: collapse; width: 100%;">
      <thead>
        <tr style="background-color: #f2f2f2;">
          <th>Owner</th>
          <th>Task</th>
        </tr>
      </thead>
      <tbody>
        {{- range .Actions}}
        <tr>
          <td>{{.OwnerOrUnassigned}}</td>
          <td>{{.Task}}</td>
        </tr>
        {{- end}}
      </tbody>
    </table>
  </body>
</html>
`))

// Render builds the HTML and plain-text bodies for actions
func Render(actions []entities.ActionItem, message string) (string, string, error) {
	var buf bytes.Buffer
	data := struct {
		Message string
		Actions []entities.ActionItem
	}{Message: message, Actions: actions}
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render email: %w", err)
	}

	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, a.OwnerOrUnassigned()+": "+a.Task)
	}
	return buf.String(), strings.Join(lines, "\n"), nil
}
