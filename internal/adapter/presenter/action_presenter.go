package presenter

import (
	"github.com/johnquangdev/meeting-actions/internal/adapter/dto/action"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/internal/usecase/upload"
)

// ToExtractResponse converts extracted items to ExtractResponse DTO
func ToExtractResponse(items []entities.ActionItem) *action.ExtractResponse {
	if items == nil {
		items = []entities.ActionItem{}
	}
	return &action.ExtractResponse{
		Actions:     items,
		ActionCount: len(items),
	}
}

// ToUploadResponse converts an upload result to UploadResponse DTO
func ToUploadResponse(r *upload.Result) *action.UploadResponse {
	if r == nil {
		return nil
	}
	actions := r.Actions
	if actions == nil {
		actions = []entities.ActionItem{}
	}
	return &action.UploadResponse{
		Transcript:  r.Transcript,
		Actions:     actions,
		ActionCount: len(actions),
	}
}
