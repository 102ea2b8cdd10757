package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := ErrInvalidArgument("Text cannot be empty")
	assert.Equal(t, "[INVALID_ARGUMENT] Text cannot be empty", err.Error())

	raw := stdErrors.New("bucket missing")
	wrapped := ErrStorageFailed("stage upload", raw)
	assert.Equal(t, "[INTEGRATION_STORAGE_FAILED] Storage operation failed: stage upload: bucket missing", wrapped.Error())
	assert.ErrorIs(t, wrapped, raw)
}

func TestAppError_WithDetailDoesNotShareMaps(t *testing.T) {
	base := ErrShareNotFound("a")
	other := base.WithDetail("share_id", "b")

	assert.Equal(t, "a", base.Details["share_id"])
	assert.Equal(t, "b", other.Details["share_id"])
}

func TestConstructorsStatus(t *testing.T) {
	tests := []struct {
		err  AppError
		code int
	}{
		{ErrInternal(nil), http.StatusInternalServerError},
		{ErrInvalidPayload(), http.StatusBadRequest},
		{ErrNoFile(), http.StatusBadRequest},
		{ErrInvalidFileType("image/png"), http.StatusBadRequest},
		{ErrEmptyTranscript(), http.StatusBadRequest},
		{ErrPayloadTooLarge(10), http.StatusRequestEntityTooLarge},
		{ErrAIServiceUnavailable("assemblyai"), http.StatusServiceUnavailable},
		{ErrAITranscriptionFailed(nil), http.StatusInternalServerError},
		{ErrShareNotFound("x"), http.StatusNotFound},
		{ErrEmailUnavailable(), http.StatusServiceUnavailable},
		{ErrEmailQuotaExceeded("limit"), http.StatusTooManyRequests},
		{ErrEmailFailed(nil), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.err.Code.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode)
		})
	}
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "SHARE_NOT_FOUND", ErrorCode_SHARE_NOT_FOUND.String())
	assert.Equal(t, "12345", ErrorCode(12345).String())
}
