// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/shrun-cli/shrun/pkg/types"
)

var (
	// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
	ErrInvalidLoadOptions = errors.New("invalid load options")
	// ErrMissingAppName is returned when the config directory must be derived
	// but no program name is known.
	ErrMissingAppName = errors.New("missing program name")
)

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath types.FilesystemPath
		// ConfigDirPath overrides the config directory lookup when set.
		ConfigDirPath types.FilesystemPath
		// AppName is the program name that selects the config directory.
		AppName string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (LoadResult, error)
	}

	// LoadResult is a loaded Config and the path it was read from.
	LoadResult struct {
		Config *Config
		// Path is empty when no config file existed and defaults were used.
		Path string
	}

	// InvalidLoadOptionsError is returned when LoadOptions has invalid fields.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}

	fileProvider struct{}
)

// NewProvider creates a configuration provider reading TOML files.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (LoadResult, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return LoadResult{}, err
	}
	return LoadResult{Config: cfg, Path: path}, nil
}

// Validate checks the options for consistency.
func (o LoadOptions) Validate() error {
	var errs []error
	if o.ConfigFilePath.IsSet() {
		if valid, fieldErrs := o.ConfigFilePath.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if o.ConfigDirPath.IsSet() {
		if valid, fieldErrs := o.ConfigDirPath.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if !o.ConfigFilePath.IsSet() && !o.ConfigDirPath.IsSet() && o.AppName == "" {
		errs = append(errs, ErrMissingAppName)
	}
	if len(errs) > 0 {
		return &InvalidLoadOptionsError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidLoadOptionsError.
func (e *InvalidLoadOptionsError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid load options: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid load options: %d field errors", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidLoadOptions for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }
