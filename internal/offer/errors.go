package offer

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidation       ErrorCode = "VALIDATION"
	ErrorCodeUpstreamAuth     ErrorCode = "UPSTREAM_AUTH"
	ErrorCodeUpstreamRejected ErrorCode = "UPSTREAM_REJECTED"
	ErrorCodeNetwork          ErrorCode = "NETWORK"
	ErrorCodeInternalFailure  ErrorCode = "INTERNAL_FAILURE"
)

// AppError is the error shape handlers translate into HTTP responses.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: message}
}

// ErrNoResults is returned by the fetch collaborator when the upstream
// search legitimately matched nothing. Callers treat it as an empty batch,
// never as a failure.
var ErrNoResults = errors.New("no offers for search")

type FetchErrorKind string

const (
	FetchNetwork          FetchErrorKind = "network"
	FetchUpstreamAuth     FetchErrorKind = "upstream-auth"
	FetchUpstreamRejected FetchErrorKind = "upstream-rejected"
)

// FetchError is the typed failure contract at the fetch-collaborator
// boundary.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch failed (%s): upstream status %d", e.Kind, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// toAppError maps a fetch failure onto the HTTP error taxonomy.
func toAppError(err error) *AppError {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case FetchUpstreamAuth:
			return &AppError{Status: http.StatusBadGateway, Code: ErrorCodeUpstreamAuth, Message: "upstream authentication failed"}
		case FetchUpstreamRejected:
			return &AppError{Status: http.StatusBadGateway, Code: ErrorCodeUpstreamRejected, Message: "upstream rejected the search"}
		case FetchNetwork:
			return &AppError{Status: http.StatusServiceUnavailable, Code: ErrorCodeNetwork, Message: "upstream unreachable"}
		}
	}
	return &AppError{Status: http.StatusInternalServerError, Code: ErrorCodeInternalFailure, Message: err.Error()}
}
