package share

import "github.com/johnquangdev/meeting-actions/internal/domain/entities"

// CreateLinkRequest asks for a share link to a set of action items
type CreateLinkRequest struct {
	Actions []entities.ActionItem `json:"actions" validate:"required,min=1,max=500,dive"`
}

// EmailRequest asks for action items to be emailed
type EmailRequest struct {
	Actions    []entities.ActionItem `json:"actions" validate:"required,min=1,max=500,dive"`
	Recipients []string              `json:"recipients" validate:"required,min=1,max=100,dive,email"`
	Subject    string                `json:"subject,omitempty" validate:"omitempty,max=200"`
	Message    string                `json:"message,omitempty" validate:"omitempty,max=5000"`
}
