package secondary

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies a gateway failure. The store collapses every kind to
// its message; kinds exist for logs, metrics, and HTTP status mapping.
type ErrorKind string

const (
	ErrTransport     ErrorKind = "transport"
	ErrAuthorization ErrorKind = "authorization"
	ErrValidation    ErrorKind = "validation"
	ErrNotFound      ErrorKind = "not_found"
	ErrMalformed     ErrorKind = "malformed"
)

// GatewayError is the single error type crossing the gateway boundary.
type GatewayError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError builds a GatewayError with a formatted message.
func NewGatewayError(kind ErrorKind, cause error, format string, args ...any) *GatewayError {
	return &GatewayError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// AsGatewayError returns err as a *GatewayError. Context expiry becomes a
// transport error; any other foreign error is wrapped as transport too.
func AsGatewayError(err error) *GatewayError {
	if err == nil {
		return nil
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewGatewayError(ErrTransport, err, "operation timed out")
	case errors.Is(err, context.Canceled):
		return NewGatewayError(ErrTransport, err, "operation cancelled")
	}
	return NewGatewayError(ErrTransport, err, "%s", err.Error())
}

// KindOf returns the kind of err, or "" when err is nil.
func KindOf(err error) ErrorKind {
	if gwErr := AsGatewayError(err); gwErr != nil {
		return gwErr.Kind
	}
	return ""
}
