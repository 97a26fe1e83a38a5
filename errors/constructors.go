package errors

import (
	"errors"
	"fmt"
)

// MissingValue reports an absent value given to typeName.
func MissingValue(typeName string) *AppError {
	return New(ErrCodeMissingValue, "missing value").WithDetail("type", typeName)
}

// InvalidArgument names the offending argument.
func InvalidArgument(argument, message string) *AppError {
	return New(ErrCodeInvalidArgument, message).WithDetail("argument", argument)
}

// OutOfRange reports index outside [0, length).
func OutOfRange(index, length int) *AppError {
	return New(ErrCodeOutOfRange, fmt.Sprintf("index %d out of range [0, %d)", index, length)).
		WithDetail("index", index).
		WithDetail("length", length)
}

// Decode wraps a codec failure for format.
func Decode(format string, cause error) *AppError {
	return New(ErrCodeDecode, "cannot decode "+format+" value").
		WithDetail("format", format).
		WithCause(cause)
}

// Wrap adds context to err, keeping its code and details when err is an
// AppError. It returns nil for a nil err.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{Code: appErr.Code, Message: message, Details: appErr.Details, cause: err}
	}
	return New(ErrCodeInternal, message).WithCause(err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Must returns value, panicking if err is set.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
