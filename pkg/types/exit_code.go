// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the launcher packages.
//
// This package is a leaf dependency: it imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess is returned when the launcher exits on its own without error
	// (listing, dry run).
	ExitSuccess ExitCode = 0
	// ExitFailure is the generic failure status for configuration, resolution
	// and parameter errors.
	ExitFailure ExitCode = 1
	// ExitCannotExecute mirrors the shell convention for a target that was
	// found but could not be executed.
	ExitCannotExecute ExitCode = 126
	// ExitNotFound mirrors the shell convention for a target that could not
	// be found on PATH.
	ExitNotFound ExitCode = 127
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates success.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// IsLaunchFailure reports whether the code signals that the target program
// never started (126 or 127).
func (c ExitCode) IsLaunchFailure() bool { return c == ExitCannotExecute || c == ExitNotFound }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
