package action

// ExtractRequest is the body of an extraction request
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}
