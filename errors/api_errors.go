// api/errors/api_errors.go
package errors

import "errors"

var (
	ErrContentNotFound    = errors.New("microlearning content not found")
	ErrPromptNotAvailable = errors.New("prompt or first message not available")
	ErrInvalidRequestData = errors.New("invalid request data")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSummarizerFailure  = errors.New("summarizer request failed")
	ErrInternalServer     = errors.New("internal server error")
)

// UnknownErrorMessage is the fixed string returned to clients when a failure
// carries no usable message.
const UnknownErrorMessage = "Unknown error"
