package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Extraction input errors
var (
	ErrTextRequired = errors.New("text is required")
	ErrTextEmpty    = errors.New("text cannot be empty")
)

// Upload errors
var (
	ErrNoFile                 = errors.New("no file uploaded")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrEmptyTranscript        = errors.New("file is empty or could not be processed")
	ErrTranscriberUnavailable = errors.New("audio transcription not configured")
	ErrTranscriptionFailed    = errors.New("audio transcription failed")
)

// Share errors
var (
	ErrNoActions          = errors.New("actions are required")
	ErrNoRecipients       = errors.New("at least one recipient is required")
	ErrEmailUnavailable   = errors.New("email service not configured")
	ErrEmailQuotaExceeded = errors.New("daily email limit reached")
	ErrTooManyRecipients  = errors.New("recipients exceed remaining email quota")
)
