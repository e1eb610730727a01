package extractor

import "fmt"

// ErrorCode classifies extraction-boundary failures.
type ErrorCode string

const (
	ErrServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	ErrBadResponse        ErrorCode = "BAD_RESPONSE"
	ErrUnreadableText     ErrorCode = "UNREADABLE_TEXT"
	ErrEmptyDocument      ErrorCode = "EMPTY_DOCUMENT"
)

// ExtractError is a structured error for text-extraction failures. These
// stay at the boundary — the analysis pipeline itself never sees them.
type ExtractError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
