package main

import "fmt"

// Exit codes for icudash CLI.
const (
	ExitOK          = 0 // Dashboard loaded (or session ended normally).
	ExitInvalidArgs = 1 // Invalid arguments or config.
	ExitLoadFailed  = 2 // The dashboard could not be loaded.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitLoadFailed:
			msg = "icudash: dashboard load failed"
		default:
			msg = fmt.Sprintf("icudash: exit code %d", code)
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
