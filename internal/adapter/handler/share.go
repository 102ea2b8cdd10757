package handler

import (
	stdErrors "errors"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/internal/adapter/dto/share"
	"github.com/johnquangdev/meeting-actions/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/meeting-actions/internal/usecase/errors"
	shareuse "github.com/johnquangdev/meeting-actions/internal/usecase/share"
	"github.com/johnquangdev/meeting-actions/pkg/validator"
)

// Share handles share links and email delivery
type Share struct {
	links   *shareuse.LinkService
	email   *shareuse.EmailService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewShareHandler creates a new share handler. m may be nil.
func NewShareHandler(links *shareuse.LinkService, email *shareuse.EmailService, m *metrics.Metrics, logger *zap.Logger) *Share {
	return &Share{links: links, email: email, metrics: m, logger: logger}
}

// CreateLink stores action items and returns a share link
// @Summary      Create share link
// @Tags         Share
// @Accept       json
// @Produce      json
// @Param        request  body      share.CreateLinkRequest  true  "Action items to share"
// @Success      200      {object}  share.LinkResponse
// @Failure      400      {object}  common.ErrorResponse  "Actions are required"
// @Router       /share/link [post]
func (h *Share) CreateLink(c echo.Context) error {
	var req share.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, shareValidationError(err))
	}

	link, err := h.links.Create(c.Request().Context(), req.Actions)
	if err != nil {
		if stdErrors.Is(err, ucerrors.ErrNoActions) {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("Actions are required"))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("create shared result", err))
	}

	h.metrics.ObserveShare()
	return HandleSuccess(h.logger, c, presenter.ToLinkResponse(link))
}

// GetLink returns the action items behind a share link
// @Summary      Get shared action items
// @Tags         Share
// @Produce      json
// @Param        shareId  path      string  true  "Share ID (UUID)"
// @Success      200      {object}  share.SharedResultResponse
// @Failure      404      {object}  common.ErrorResponse  "Shared link not found or expired"
// @Router       /share/{shareId} [get]
func (h *Share) GetLink(c echo.Context) error {
	shareID := c.Param("shareId")

	result, err := h.links.Get(c.Request().Context(), shareID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrShareNotFound) {
			return HandleError(h.logger, c, errors.ErrShareNotFound(shareID))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("find shared result", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToSharedResultResponse(result))
}

// SendEmail emails action items to recipients
// @Summary      Email action items
// @Tags         Share
// @Accept       json
// @Produce      json
// @Param        request  body      share.EmailRequest  true  "Actions and recipients"
// @Success      200      {object}  share.EmailResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing actions or recipients"
// @Failure      429      {object}  common.ErrorResponse  "Daily email limit reached"
// @Failure      503      {object}  common.ErrorResponse  "Email not configured"
// @Router       /share/email [post]
func (h *Share) SendEmail(c echo.Context) error {
	var req share.EmailRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, shareValidationError(err))
	}

	sent, err := h.email.Send(c.Request().Context(), shareuse.EmailRequest{
		Actions:    req.Actions,
		Recipients: req.Recipients,
		Subject:    req.Subject,
		Message:    req.Message,
	})
	if err != nil {
		return HandleError(h.logger, c, mapEmailError(err))
	}

	h.metrics.ObserveEmails(sent)
	return handleSuccessWithMessage(h.logger, c, "Email sent successfully", &share.EmailResponse{
		Message:    "Email sent successfully",
		Recipients: req.Recipients,
	})
}

// Quota reports today's email allowance
// @Summary      Email quota
// @Tags         Share
// @Produce      json
// @Success      200  {object}  share.QuotaResponse
// @Router       /share/email/quota [get]
func (h *Share) Quota(c echo.Context) error {
	q, err := h.email.Quota(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrCacheFailed("read email quota", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToQuotaResponse(q))
}

func shareValidationError(err error) error {
	fe, ok := validator.FirstError(err)
	if !ok {
		return errors.ErrInvalidPayload()
	}
	switch fe.Field {
	case "actions":
		if fe.Tag == "required" || fe.Tag == "min" {
			return errors.ErrInvalidArgument("Actions are required")
		}
		return errors.ErrInvalidArgument("Invalid action items").WithDetail("rule", fe.Tag)
	case "recipients":
		if fe.Tag == "email" {
			return errors.ErrInvalidArgument("Invalid recipient email address")
		}
		if fe.Tag == "max" {
			return errors.ErrInvalidArgument("Too many recipients")
		}
		return errors.ErrInvalidArgument("At least one recipient email is required")
	default:
		return errors.ErrInvalidArgument("Invalid "+strings.ToLower(fe.Field)).WithDetail("rule", fe.Tag)
	}
}

func mapEmailError(err error) error {
	switch {
	case stdErrors.Is(err, ucerrors.ErrNoActions):
		return errors.ErrInvalidArgument("Actions are required")
	case stdErrors.Is(err, ucerrors.ErrNoRecipients):
		return errors.ErrInvalidArgument("At least one recipient email is required")
	case stdErrors.Is(err, ucerrors.ErrEmailUnavailable):
		return errors.ErrEmailUnavailable()
	case stdErrors.Is(err, ucerrors.ErrEmailQuotaExceeded), stdErrors.Is(err, ucerrors.ErrTooManyRecipients):
		return errors.ErrEmailQuotaExceeded(capitalize(err.Error()))
	default:
		return errors.ErrEmailFailed(err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
