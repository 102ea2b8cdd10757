package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/meeting-actions/internal/usecase/errors"
	"github.com/johnquangdev/meeting-actions/internal/usecase/upload"
)

// Upload handles transcript and audio file uploads
type Upload struct {
	svc      *upload.Service
	maxBytes int64
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewUploadHandler creates a new upload handler. m may be nil.
func NewUploadHandler(svc *upload.Service, maxBytes int64, m *metrics.Metrics, logger *zap.Logger) *Upload {
	return &Upload{svc: svc, maxBytes: maxBytes, metrics: m, logger: logger}
}

// Upload extracts action items from an uploaded file
// @Summary      Upload transcript or audio
// @Description  Accepts a text transcript or an audio recording (multipart field "file"); audio is transcribed first
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Transcript (.txt) or audio (.mp3, .wav, .flac, .ogg, .m4a)"
// @Success      200   {object}  action.UploadResponse
// @Failure      400   {object}  common.ErrorResponse  "No file, invalid type or empty transcript"
// @Failure      413   {object}  common.ErrorResponse  "File too large"
// @Failure      503   {object}  common.ErrorResponse  "Audio transcription not configured"
// @Router       /upload [post]
func (h *Upload) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		if stdErrors.Is(err, http.ErrMissingFile) || stdErrors.Is(err, http.ErrNotMultipart) {
			return HandleError(h.logger, c, errors.ErrNoFile())
		}
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	kind := upload.Classify(fh.Filename, contentType)
	h.metrics.ObserveUpload(string(kind))

	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return HandleError(h.logger, c, errors.ErrPayloadTooLarge(h.maxBytes))
	}

	src, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	result, err := h.svc.Process(c.Request().Context(), upload.File{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        src,
	})
	if err != nil {
		return HandleError(h.logger, c, mapUploadError(err, contentType))
	}

	h.metrics.ObserveExtraction("upload", len(result.Actions))
	return HandleSuccess(h.logger, c, presenter.ToUploadResponse(result))
}

func mapUploadError(err error, contentType string) error {
	switch {
	case stdErrors.Is(err, ucerrors.ErrNoFile):
		return errors.ErrNoFile()
	case stdErrors.Is(err, ucerrors.ErrUnsupportedFileType):
		return errors.ErrInvalidFileType(contentType)
	case stdErrors.Is(err, ucerrors.ErrTranscriberUnavailable):
		return errors.ErrAIServiceUnavailable("assemblyai")
	case stdErrors.Is(err, ucerrors.ErrTranscriptionFailed):
		return errors.ErrAITranscriptionFailed(err)
	case stdErrors.Is(err, ucerrors.ErrEmptyTranscript):
		return errors.ErrEmptyTranscript()
	default:
		return errors.ErrStorageFailed("process upload", err)
	}
}
