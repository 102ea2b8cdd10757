package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/internal/adapter/dto/action"
	"github.com/johnquangdev/meeting-actions/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/metrics"
)

// ActionExtractor finds action items in text
type ActionExtractor interface {
	ExtractActions(text string) []entities.ActionItem
}

// Action handles transcript text extraction
type Action struct {
	extractor ActionExtractor
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewActionHandler creates a new action handler. m may be nil.
func NewActionHandler(extractor ActionExtractor, m *metrics.Metrics, logger *zap.Logger) *Action {
	return &Action{extractor: extractor, metrics: m, logger: logger}
}

// Extract finds action items in a pasted transcript
// @Summary      Extract action items
// @Description  Finds owners and tasks in transcript text
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Param        request  body      action.ExtractRequest  true  "Transcript text"
// @Success      200      {object}  action.ExtractResponse
// @Failure      400      {object}  common.ErrorResponse  "Text missing or blank"
// @Router       /actions/extract [post]
func (h *Action) Extract(c echo.Context) error {
	var req action.ExtractRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Text is required"))
	}
	if strings.TrimSpace(req.Text) == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Text cannot be empty"))
	}

	items := h.extractor.ExtractActions(req.Text)
	h.metrics.ObserveExtraction("text", len(items))

	return HandleSuccess(h.logger, c, presenter.ToExtractResponse(items))
}
