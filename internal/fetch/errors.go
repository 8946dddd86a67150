package fetch

import (
	"errors"
	"fmt"
)

// TransportError reports a non-success response status, or a request that
// never produced a response (StatusCode 0).
type TransportError struct {
	StatusCode int
	Detail     string // error message carried by the failed response body, if any
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("aggregation endpoint unreachable: %v", e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("aggregation endpoint returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("aggregation endpoint returned status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AppError reports a success response whose body carries a non-empty error.
type AppError struct {
	Message string
}

func (e *AppError) Error() string { return e.Message }

// ParseError reports a response body that does not match the result shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding dashboard data: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind names the failure class of err: "transport", "application", "parse",
// or "" for anything else.
func Kind(err error) string {
	var te *TransportError
	var ae *AppError
	var pe *ParseError
	switch {
	case errors.As(err, &te):
		return "transport"
	case errors.As(err, &ae):
		return "application"
	case errors.As(err, &pe):
		return "parse"
	default:
		return ""
	}
}
