package core

import (
	"context"
	"errors"
	"os"
	"syscall"
)

// Exit codes for the application.
// These follow Unix conventions where signal-based exits are 128 + signal number.
const (
	// ExitCodeSuccess indicates a clean run (exit code 0)
	ExitCodeSuccess = 0

	// ExitCodeError indicates an error occurred (exit code 1)
	ExitCodeError = 1

	// ExitCodeUsage indicates bad flags, arguments or configuration (exit code 2)
	ExitCodeUsage = 2

	// ExitCodeSIGINT indicates termination due to SIGINT (Ctrl+C)
	// Convention: 128 + 2 (SIGINT) = 130
	ExitCodeSIGINT = 130

	// ExitCodeSIGTERM indicates termination due to SIGTERM
	// Convention: 128 + 15 (SIGTERM) = 143
	ExitCodeSIGTERM = 143
)

// Cancellation causes recorded when a signal stops a run.
var (
	ErrInterrupted = errors.New("interrupted")
	ErrTerminated  = errors.New("terminated")
)

// SignalCause returns the cancellation cause for sig.
func SignalCause(sig os.Signal) error {
	if sig == syscall.SIGTERM {
		return ErrTerminated
	}
	return ErrInterrupted
}

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "success"
	case ExitCodeError:
		return "error"
	case ExitCodeUsage:
		return "usage"
	case ExitCodeSIGINT:
		return "interrupted (SIGINT)"
	case ExitCodeSIGTERM:
		return "terminated (SIGTERM)"
	default:
		return "unknown"
	}
}

// IsSignalExit reports whether code is a signal-based exit code.
func IsSignalExit(code int) bool {
	return code == ExitCodeSIGINT || code == ExitCodeSIGTERM
}

// ExitCodeFor maps an error returned by a command to its exit code. A plain
// context.Canceled counts as an interrupt.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrTerminated):
		return ExitCodeSIGTERM
	case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled):
		return ExitCodeSIGINT
	default:
		if _, ok := IsConfigError(err); ok {
			return ExitCodeUsage
		}
		return ExitCodeError
	}
}
