// Package errors defines the coded error raised by wrapper construction,
// element access and decoding. Under errors.Is two errors match when their
// codes match, so callers test a category without parsing messages.
package errors

import (
	"encoding/json"
	"strings"
)

// ErrorCode names an error category.
type ErrorCode string

const (
	// ErrCodeMissingValue is raised when an absent value reaches a kind that rejects null.
	ErrCodeMissingValue ErrorCode = "MISSING_VALUE"
	// ErrCodeInvalidArgument is raised for unusable arguments other than absent values.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeOutOfRange is raised when a position lies outside a sequence.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	// ErrCodeDecode is raised when serialized input cannot be decoded.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
	// ErrCodeInternal marks foreign errors wrapped without a better category.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError is a coded error with structured details.
type AppError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	cause   error
}

// New creates an AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.Code))
	b.WriteString("] ")
	b.WriteString(e.Message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the cause, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches any *AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithCause records the error that triggered e.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail attaches a key/value pair to e.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

type wireError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   string         `json:"cause,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *AppError) MarshalJSON() ([]byte, error) {
	w := wireError{Code: e.Code, Message: e.Message, Details: e.Details}
	if e.cause != nil {
		w.Cause = e.cause.Error()
	}
	return json.Marshal(w)
}
