package presenter

import (
	"github.com/johnquangdev/meeting-actions/internal/adapter/dto/share"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	shareuse "github.com/johnquangdev/meeting-actions/internal/usecase/share"
)

// ToLinkResponse converts a created link to LinkResponse DTO
func ToLinkResponse(l *shareuse.Link) *share.LinkResponse {
	if l == nil {
		return nil
	}
	return &share.LinkResponse{
		ShareID:   l.ID.String(),
		ShareLink: l.URL,
	}
}

// ToSharedResultResponse converts a SharedResult entity to its DTO
func ToSharedResultResponse(r *entities.SharedResult) *share.SharedResultResponse {
	if r == nil {
		return nil
	}
	actions := []entities.ActionItem(r.Actions)
	if actions == nil {
		actions = []entities.ActionItem{}
	}
	return &share.SharedResultResponse{
		Actions:   actions,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}

// ToQuotaResponse converts the email quota to its DTO
func ToQuotaResponse(q *shareuse.Quota) interface{} {
	if q == nil || !q.Available {
		return &share.QuotaUnavailableResponse{
			Available: false,
			Message:   "Email service is not configured",
		}
	}
	return &share.QuotaResponse{
		Available: true,
		Limit:     q.Limit,
		Used:      q.Used,
		Remaining: q.Remaining,
		ResetDate: q.ResetDate,
	}
}
