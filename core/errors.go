package core

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes SDK errors.
type ErrorCode string

const (
	ErrUnauthorized ErrorCode = "unauthorized"
	ErrNotFound     ErrorCode = "not_found"
	ErrBadRequest   ErrorCode = "bad_request"
	ErrConflict     ErrorCode = "conflict"
	ErrServerError  ErrorCode = "server_error"
	ErrTransport    ErrorCode = "transport"
	ErrCanceled     ErrorCode = "canceled"
	ErrInternal     ErrorCode = "internal"
)

// APIError provides rich context for SDK consumers.
type APIError struct {
	Code     ErrorCode
	Message  string
	Status   int
	Endpoint string
	Details  map[string]any
	wrapped  error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.wrapped)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.wrapped }

// WrapError creates a new APIError with the provided code.
func WrapError(err error, code ErrorCode) *APIError {
	if err == nil {
		return nil
	}
	var api *APIError
	if errors.As(err, &api) {
		return api
	}
	return &APIError{Code: code, Message: err.Error(), wrapped: err}
}

// NewError builds an APIError explicitly.
func NewError(code ErrorCode, message string, opts ...ErrorOption) *APIError {
	e := &APIError{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ErrorOption mutates an APIError during construction.
type ErrorOption func(*APIError)

// WithStatus sets the HTTP status code.
func WithStatus(status int) ErrorOption {
	return func(e *APIError) { e.Status = status }
}

// WithEndpoint records the originating endpoint.
func WithEndpoint(endpoint string) ErrorOption {
	return func(e *APIError) { e.Endpoint = endpoint }
}

// WithDetails attaches structured context.
func WithDetails(details map[string]any) ErrorOption {
	return func(e *APIError) { e.Details = details }
}

// WithWrapped attaches an underlying error.
func WithWrapped(err error) ErrorOption {
	return func(e *APIError) { e.wrapped = err }
}

func classify(code ErrorCode) func(error) bool {
	return func(err error) bool {
		var api *APIError
		if err == nil {
			return false
		}
		if errors.As(err, &api) {
			return api.Code == code
		}
		return false
	}
}

// Helper predicates for common error handling patterns.
var (
	IsUnauthorized = classify(ErrUnauthorized)
	IsNotFound     = classify(ErrNotFound)
	IsBadRequest   = classify(ErrBadRequest)
	IsConflict     = classify(ErrConflict)
	IsServerError  = classify(ErrServerError)
	IsTransport    = classify(ErrTransport)
	IsCanceled     = classify(ErrCanceled)
)

// StatusOf extracts the HTTP status carried by an error, or 0.
func StatusOf(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		return api.Status
	}
	return 0
}
