package action

import "github.com/johnquangdev/meeting-actions/internal/domain/entities"

// ExtractResponse lists the action items found in a transcript
type ExtractResponse struct {
	Actions     []entities.ActionItem `json:"actions"`
	ActionCount int                   `json:"actionCount"`
}

// UploadResponse is returned after an uploaded file has been processed
type UploadResponse struct {
	Transcript  string                `json:"transcript"`
	Actions     []entities.ActionItem `json:"actions"`
	ActionCount int                   `json:"actionCount"`
}
