// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultPlaceholder marks where a parameter value is substituted when
// neither the command nor the [default] table sets one.
const DefaultPlaceholder = "{}"

var (
	// ErrInvalidPlaceholder is returned when a configured placeholder is empty.
	ErrInvalidPlaceholder = errors.New("invalid placeholder")
	// ErrInvalidBase is returned when a command base has no executable token.
	ErrInvalidBase = errors.New("invalid base")
	// ErrInvalidCommandConfig is the sentinel error wrapped by InvalidCommandConfigError.
	ErrInvalidCommandConfig = errors.New("invalid command config")
	// ErrInvalidDefaultConfig is the sentinel error wrapped by InvalidDefaultConfigError.
	ErrInvalidDefaultConfig = errors.New("invalid default config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Placeholder is the token inside a parameter template that is replaced
	// by the value supplied on the command line.
	Placeholder string

	// InvalidPlaceholderError is returned when a Placeholder is empty. An
	// empty placeholder would match between every byte of a template.
	InvalidPlaceholderError struct {
		Value Placeholder
	}

	// InvalidBaseError is returned when a command base is empty or its
	// executable token is empty.
	InvalidBaseError struct {
		Base StringList
	}

	// InvalidCommandConfigError is returned when a CommandConfig has invalid
	// fields. It wraps ErrInvalidCommandConfig and collects field errors.
	InvalidCommandConfigError struct {
		Name        string
		FieldErrors []error
	}

	// InvalidDefaultConfigError is returned when the [default] table has
	// invalid fields. It wraps ErrInvalidDefaultConfig.
	InvalidDefaultConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields. It
	// wraps ErrInvalidConfig and collects the errors of all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// ParamDef is the list of argument templates a parameter expands to.
	ParamDef StringList

	// ParamTable maps parameter names to their templates.
	ParamTable map[string]ParamDef

	// Config is the whole configuration file.
	Config struct {
		// Default holds the global settings of the [default] table.
		Default DefaultConfig `mapstructure:"default"`
		// Commands maps command names to their definitions ([command.<name>]).
		Commands map[string]*CommandConfig `mapstructure:"command"`
	}

	// DefaultConfig holds global settings that commands fall back to.
	DefaultConfig struct {
		// PassthroughUnknownCommand runs undefined command names as literal
		// executables (default false).
		PassthroughUnknownCommand bool `mapstructure:"passthrough_unknown_command"`
		// Placeholder is the global placeholder token (default "{}").
		Placeholder Placeholder `mapstructure:"placeholder"`
		// Env is applied to every launched command before the command's own env.
		Env EnvSet `mapstructure:"env"`
	}

	// CommandConfig defines one shorthand command.
	CommandConfig struct {
		// Base is the executable followed by fixed leading arguments.
		Base StringList `mapstructure:"base"`
		// Placeholder overrides the global placeholder when set.
		Placeholder Placeholder `mapstructure:"placeholder"`
		// HeadParams expand right after the executable.
		HeadParams ParamTable `mapstructure:"headparams"`
		// MiddleParams expand after the fixed base arguments.
		MiddleParams ParamTable `mapstructure:"middleparams"`
		// TailParams expand last, after forwarded arguments.
		TailParams ParamTable `mapstructure:"tailparams"`
		// Env is applied after the global env.
		Env EnvSet `mapstructure:"env"`
	}
)

// Defaults returns a Config with every default applied and no commands.
func Defaults() *Config {
	return &Config{
		Default: DefaultConfig{
			PassthroughUnknownCommand: false,
			Placeholder:               DefaultPlaceholder,
		},
		Commands: map[string]*CommandConfig{},
	}
}

// EmptyFor synthesizes the definition used for a passthrough command: the
// name itself is the executable and no parameters are defined.
func EmptyFor(name string) *CommandConfig {
	return &CommandConfig{Base: Single(name)}
}

// String returns the string representation of the Placeholder.
func (p Placeholder) String() string { return string(p) }

// IsSet reports whether the placeholder was configured.
func (p Placeholder) IsSet() bool { return p != "" }

// IsValid returns whether the Placeholder is non-empty.
func (p Placeholder) IsValid() (bool, []error) {
	if p == "" {
		return false, []error{&InvalidPlaceholderError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPlaceholderError.
func (e *InvalidPlaceholderError) Error() string {
	return fmt.Sprintf("invalid placeholder %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidPlaceholder for errors.Is() compatibility.
func (e *InvalidPlaceholderError) Unwrap() error { return ErrInvalidPlaceholder }

// Error implements the error interface for InvalidBaseError.
func (e *InvalidBaseError) Error() string {
	if e.Base.Len() == 0 {
		return "invalid base: must contain at least the executable"
	}
	return fmt.Sprintf("invalid base %q: executable must be non-empty", e.Base.Values())
}

// Unwrap returns ErrInvalidBase for errors.Is() compatibility.
func (e *InvalidBaseError) Unwrap() error { return ErrInvalidBase }

// Templates returns the parameter templates in declaration order.
func (d ParamDef) Templates() []string { return StringList(d).Values() }

// Names returns the parameter names in lexicographic order.
func (t ParamTable) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Executable returns the first base token.
func (c *CommandConfig) Executable() string { return c.Base.First() }

// Args returns the base tokens after the executable.
func (c *CommandConfig) Args() []string {
	values := c.Base.Values()
	if len(values) == 0 {
		return nil
	}
	return values[1:]
}

// IsValid returns whether the command definition is usable.
func (c *CommandConfig) IsValid() (bool, []error) {
	var errs []error
	if c.Base.Len() == 0 || c.Base.First() == "" {
		errs = append(errs, &InvalidBaseError{Base: c.Base})
	}
	if c.Placeholder.IsSet() {
		if valid, fieldErrs := c.Placeholder.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.Env.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// Error implements the error interface for InvalidCommandConfigError.
func (e *InvalidCommandConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid command %q: %s", e.Name, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidCommandConfig and the field errors.
func (e *InvalidCommandConfigError) Unwrap() []error {
	return append([]error{ErrInvalidCommandConfig}, e.FieldErrors...)
}

// IsValid returns whether the [default] table is usable.
func (d DefaultConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := d.Placeholder.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := d.Env.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidDefaultConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidDefaultConfigError.
func (e *InvalidDefaultConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return "invalid [default] table: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidDefaultConfig and the field errors.
func (e *InvalidDefaultConfigError) Unwrap() []error {
	return append([]error{ErrInvalidDefaultConfig}, e.FieldErrors...)
}

// CommandNames returns the defined command names in lexicographic order.
func (c *Config) CommandNames() []string {
	return slices.Sorted(maps.Keys(c.Commands))
}

// Command returns the definition for name, or nil when it is not defined.
func (c *Config) Command(name string) *CommandConfig {
	return c.Commands[name]
}

// IsValid returns whether the Config is usable. It delegates to the
// [default] table and every command definition.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Default.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, name := range c.CommandNames() {
		cmd := c.Commands[name]
		if cmd == nil {
			errs = append(errs, &InvalidCommandConfigError{
				Name:        name,
				FieldErrors: []error{&InvalidBaseError{}},
			})
			continue
		}
		if valid, fieldErrs := cmd.IsValid(); !valid {
			errs = append(errs, &InvalidCommandConfigError{Name: name, FieldErrors: fieldErrs})
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns the field errors and ErrInvalidConfig so errors.Is/As reach
// both the sentinel and the individual causes.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
