package pkg

import "net/http"

// AppError is the error shape returned to HTTP clients.
//
// Code is a stable machine-readable category (NOT_FOUND, CONFLICT, ...).
// Err keeps the internal cause for logging and is never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

type HTTPError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

// WithDetail returns a copy of the error carrying an extra client-visible detail.
func (e *AppError) WithDetail(key string, value any) *AppError {
	out := *e
	out.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		out.Details[k] = v
	}
	out.Details[key] = value
	return &out
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

var (
	ErrNotFound            = NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	ErrInvalidRequest      = NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	ErrUnauthorized        = NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	ErrForbidden           = NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
	ErrUpstreamUnavailable = NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "Upstream service unavailable", http.StatusBadGateway)
)
