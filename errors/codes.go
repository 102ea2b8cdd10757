package errors

import "strconv"

// ErrorCode identifies an application error in API responses
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1004

	// Upload
	ErrorCode_UPLOAD_NO_FILE          ErrorCode = 2000
	ErrorCode_UPLOAD_INVALID_TYPE     ErrorCode = 2001
	ErrorCode_UPLOAD_EMPTY_TRANSCRIPT ErrorCode = 2002

	// AI
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3001

	// Share
	ErrorCode_SHARE_NOT_FOUND            ErrorCode = 4000
	ErrorCode_SHARE_EMAIL_UNAVAILABLE    ErrorCode = 4001
	ErrorCode_SHARE_EMAIL_QUOTA_EXCEEDED ErrorCode = 4002
	ErrorCode_SHARE_EMAIL_FAILED         ErrorCode = 4003

	// Integration
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5001
	ErrorCode_DB_QUERY_FAILED            ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_PAYLOAD_TOO_LARGE:          "PAYLOAD_TOO_LARGE",
	ErrorCode_UPLOAD_NO_FILE:             "UPLOAD_NO_FILE",
	ErrorCode_UPLOAD_INVALID_TYPE:        "UPLOAD_INVALID_TYPE",
	ErrorCode_UPLOAD_EMPTY_TRANSCRIPT:    "UPLOAD_EMPTY_TRANSCRIPT",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_SHARE_NOT_FOUND:            "SHARE_NOT_FOUND",
	ErrorCode_SHARE_EMAIL_UNAVAILABLE:    "SHARE_EMAIL_UNAVAILABLE",
	ErrorCode_SHARE_EMAIL_QUOTA_EXCEEDED: "SHARE_EMAIL_QUOTA_EXCEEDED",
	ErrorCode_SHARE_EMAIL_FAILED:         "SHARE_EMAIL_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}
