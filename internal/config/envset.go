// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

const (
	// EnvOpSet assigns a value to the variable.
	EnvOpSet EnvOp = "set"
	// EnvOpUnset removes the variable.
	EnvOpUnset EnvOp = "unset"
	// EnvOpAppend appends values to the current value of the variable.
	EnvOpAppend EnvOp = "append"

	// DefaultAppendSeparator joins appended values when no separator is configured.
	DefaultAppendSeparator = " "
)

var (
	// ErrInvalidEnvOp is returned when an EnvOp value is not recognized.
	ErrInvalidEnvOp = errors.New("invalid env op")
	// ErrInvalidEnvValue is the sentinel error wrapped by InvalidEnvValueError.
	ErrInvalidEnvValue = errors.New("invalid env value")
)

type (
	// EnvOp selects how an environment mutation is applied.
	EnvOp string

	// InvalidEnvOpError is returned when an EnvOp value is not recognized.
	InvalidEnvOpError struct {
		Value EnvOp
	}

	// EnvValue is a single environment mutation.
	//
	// In TOML it is written either as a bare string, which is shorthand for
	// set, or as a table tagged by its op field:
	//
	//	EDITOR = "vim"
	//	LESS = { op = "unset" }
	//	PATH = { op = "append", value = ["/opt/bin"], separator = ":" }
	EnvValue struct {
		Op EnvOp
		// Value holds the assigned value for set and the appended values for
		// append. It is empty for unset.
		Value StringList
		// Separator joins appended values; only meaningful for append.
		Separator string
		// Shorthand records that a set was authored as a bare string.
		Shorthand bool
	}

	// InvalidEnvValueError is returned when an EnvValue is inconsistent with
	// its op. It wraps ErrInvalidEnvValue for errors.Is() compatibility.
	InvalidEnvValueError struct {
		Name   string
		Reason string
	}

	// EnvSet maps environment variable names to the mutation applied to them.
	EnvSet map[string]EnvValue
)

// SetEnv returns a full (non-shorthand) set mutation.
func SetEnv(value string) EnvValue {
	return EnvValue{Op: EnvOpSet, Value: Single(value)}
}

// ShorthandEnv returns a set mutation authored as a bare string.
func ShorthandEnv(value string) EnvValue {
	return EnvValue{Op: EnvOpSet, Value: Single(value), Shorthand: true}
}

// UnsetEnv returns an unset mutation.
func UnsetEnv() EnvValue {
	return EnvValue{Op: EnvOpUnset}
}

// AppendEnv returns an append mutation. An empty separator selects
// DefaultAppendSeparator.
func AppendEnv(value StringList, separator string) EnvValue {
	if separator == "" {
		separator = DefaultAppendSeparator
	}
	return EnvValue{Op: EnvOpAppend, Value: value, Separator: separator}
}

// String returns the string representation of the EnvOp.
func (o EnvOp) String() string { return string(o) }

// IsValid returns whether the EnvOp is one of the known ops.
func (o EnvOp) IsValid() (bool, []error) {
	switch o {
	case EnvOpSet, EnvOpUnset, EnvOpAppend:
		return true, nil
	default:
		return false, []error{&InvalidEnvOpError{Value: o}}
	}
}

// Error implements the error interface for InvalidEnvOpError.
func (e *InvalidEnvOpError) Error() string {
	return fmt.Sprintf("invalid env op %q (valid: set, unset, append)", e.Value)
}

// Unwrap returns ErrInvalidEnvOp for errors.Is() compatibility.
func (e *InvalidEnvOpError) Unwrap() error { return ErrInvalidEnvOp }

// Validate checks that the mutation for the variable name is well formed.
func (v EnvValue) Validate(name string) error {
	if valid, errs := v.Op.IsValid(); !valid {
		return errs[0]
	}
	switch v.Op {
	case EnvOpSet:
		if v.Value.Len() != 1 {
			return &InvalidEnvValueError{Name: name, Reason: "set requires exactly one value"}
		}
	case EnvOpUnset:
		if v.Value.Len() != 0 {
			return &InvalidEnvValueError{Name: name, Reason: "unset takes no value"}
		}
	case EnvOpAppend:
		if v.Value.Len() == 0 {
			return &InvalidEnvValueError{Name: name, Reason: "append requires a value"}
		}
	}
	return nil
}

// Equal reports whether two mutations are identical, including the authored form.
func (v EnvValue) Equal(other EnvValue) bool {
	return v.Op == other.Op &&
		v.Value.Equal(other.Value) &&
		v.Separator == other.Separator &&
		v.Shorthand == other.Shorthand
}

// String renders the mutation for diagnostics.
func (v EnvValue) String() string {
	switch v.Op {
	case EnvOpSet:
		return fmt.Sprintf("set %q", v.Value.First())
	case EnvOpUnset:
		return "unset"
	case EnvOpAppend:
		return fmt.Sprintf("append %q (separator %q)", v.Value.Values(), v.Separator)
	default:
		return string(v.Op)
	}
}

// tomlValue returns the shorthand string for shorthand sets and the tagged
// table otherwise. Append always writes its separator.
func (v EnvValue) tomlValue() any {
	switch v.Op {
	case EnvOpSet:
		if v.Shorthand {
			return v.Value.First()
		}
		return map[string]any{"op": string(v.Op), "value": v.Value.First()}
	case EnvOpAppend:
		return map[string]any{
			"op":        string(v.Op),
			"value":     v.Value.tomlValue(),
			"separator": v.Separator,
		}
	default:
		return map[string]any{"op": string(v.Op)}
	}
}

// Error implements the error interface for InvalidEnvValueError.
func (e *InvalidEnvValueError) Error() string {
	return fmt.Sprintf("invalid env value for %s: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidEnvValue for errors.Is() compatibility.
func (e *InvalidEnvValueError) Unwrap() error { return ErrInvalidEnvValue }

// Names returns the variable names in lexicographic order, the order in
// which mutations are applied.
func (s EnvSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// IsValid returns whether every mutation in the set is well formed.
func (s EnvSet) IsValid() (bool, []error) {
	var errs []error
	for _, name := range s.Names() {
		if err := s[name].Validate(name); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

func (s EnvSet) tomlValue() map[string]any {
	out := make(map[string]any, len(s))
	for name, v := range s {
		out[name] = v.tomlValue()
	}
	return out
}
