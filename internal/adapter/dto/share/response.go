package share

import (
	"time"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// LinkResponse is a created share link
type LinkResponse struct {
	ShareID   string `json:"shareId"`
	ShareLink string `json:"shareLink"`
}

// SharedResultResponse is the content behind a share link
type SharedResultResponse struct {
	Actions   []entities.ActionItem `json:"actions"`
	CreatedAt time.Time             `json:"createdAt"`
	ExpiresAt *time.Time            `json:"expiresAt,omitempty"`
}

// EmailResponse confirms a sent email
type EmailResponse struct {
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// QuotaResponse reports the daily email allowance
type QuotaResponse struct {
	Available bool   `json:"available"`
	Limit     int    `json:"limit"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	ResetDate string `json:"resetDate"`
}

// QuotaUnavailableResponse is returned when email is not configured
type QuotaUnavailableResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
