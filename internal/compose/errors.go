// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCommandNotDefined is returned when a command name has no definition
	// and passthrough is disabled.
	ErrCommandNotDefined = errors.New("command not defined")
	// ErrUnknownParameter is returned when a parameter name is declared in
	// none of the command's parameter tables.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrAmbiguousParameterPlacement is returned when a parameter name is
	// declared in more than one parameter table.
	ErrAmbiguousParameterPlacement = errors.New("ambiguous parameter placement")
	// ErrValueRequired is returned when a parameter whose templates contain
	// the placeholder is supplied without a value.
	ErrValueRequired = errors.New("parameter value is required")
	// ErrValueNotAllowed is returned when a value is supplied for a parameter
	// whose templates never contain the placeholder.
	ErrValueNotAllowed = errors.New("parameter value is not allowed")
)

type (
	// CommandNotDefinedError is returned by Resolve for undefined commands.
	CommandNotDefinedError struct {
		Name string
	}

	// UnknownParameterError is returned when a supplied parameter is not
	// declared by the resolved command.
	UnknownParameterError struct {
		Name string
		// Declared lists every parameter name the command declares, sorted.
		Declared []string
	}

	// AmbiguousParameterPlacementError is returned when a supplied parameter
	// is declared in several buckets.
	AmbiguousParameterPlacementError struct {
		Name    string
		Buckets []Bucket
	}

	// ExtractionError is returned when substituting a parameter value into
	// its templates fails. Err is ErrValueRequired or ErrValueNotAllowed.
	ExtractionError struct {
		Param string
		Err   error
	}
)

// Error implements the error interface for CommandNotDefinedError.
func (e *CommandNotDefinedError) Error() string {
	return fmt.Sprintf("command %q is not defined", e.Name)
}

// Unwrap returns ErrCommandNotDefined for errors.Is() compatibility.
func (e *CommandNotDefinedError) Unwrap() error { return ErrCommandNotDefined }

// Error implements the error interface for UnknownParameterError.
func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}

// Unwrap returns ErrUnknownParameter for errors.Is() compatibility.
func (e *UnknownParameterError) Unwrap() error { return ErrUnknownParameter }

// Error implements the error interface for AmbiguousParameterPlacementError.
func (e *AmbiguousParameterPlacementError) Error() string {
	names := make([]string, len(e.Buckets))
	for i, b := range e.Buckets {
		names[i] = b.TableName()
	}
	return fmt.Sprintf("ambiguous parameter placement for %q (declared in %s)", e.Name, strings.Join(names, ", "))
}

// Unwrap returns ErrAmbiguousParameterPlacement for errors.Is() compatibility.
func (e *AmbiguousParameterPlacementError) Unwrap() error { return ErrAmbiguousParameterPlacement }

// Error implements the error interface for ExtractionError.
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("parameter %q: argument extraction failed: %v", e.Param, e.Err)
}

// Unwrap returns the extraction failure.
func (e *ExtractionError) Unwrap() error { return e.Err }
