// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrun-cli/shrun/internal/issue"
	"github.com/shrun-cli/shrun/pkg/cueutil"
	"github.com/shrun-cli/shrun/pkg/fspath"
	"github.com/shrun-cli/shrun/pkg/platform"
	"github.com/shrun-cli/shrun/pkg/types"
)

const (
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	schemaRoot = "#Config"
)

// ErrConfigSyntax is the sentinel error wrapped by SyntaxError.
var ErrConfigSyntax = errors.New("config syntax error")

//go:embed config_schema.cue
var configSchema string

// SyntaxError reports a TOML syntax error with its position in the file.
type SyntaxError struct {
	File   string
	Line   int
	Column int
	Err    error
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %v", e.File, e.Line, e.Column, e.Err)
}

// Unwrap returns ErrConfigSyntax and the parser error.
func (e *SyntaxError) Unwrap() []error { return []error{ErrConfigSyntax, e.Err} }

// ConfigDir returns the configuration directory of appName using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir(appName string) (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, appName), nil
}

// ConfigPath returns the default config file location for appName.
func ConfigPath(appName string) (string, error) {
	dir, err := ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Parse decodes TOML data into a Config. filename is only used in error
// messages. Keys absent from data keep their defaults.
func Parse(data []byte, filename string) (*Config, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, col := decodeErr.Position()
			return nil, &SyntaxError{File: filename, Line: line, Column: col, Err: err}
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if tree == nil {
		tree = map[string]any{}
	}

	if err := cueutil.Validate(configSchema, schemaRoot, tree, cueutil.WithFilename(filename)); err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := decodeTree(tree, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, errs[0]
	}

	return cfg, nil
}

// loadWithOptions resolves the config file location and loads it. It returns
// the loaded config and the path it was read from ("" when defaults were used).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	// An explicit file must exist.
	if opts.ConfigFilePath.IsSet() {
		expanded, err := fspath.ExpandHome(opts.ConfigFilePath)
		if err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath.String()).
				WithSuggestion("Use an absolute path or set HOME").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
		path := fspath.Clean(expanded).String()
		if !fileExists(path) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", path)).
				BuildError()
		}
		cfg, err := loadFile(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath, opts.AppName)
	if err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("locate configuration directory").
			WithSuggestion("Set XDG_CONFIG_HOME or HOME, or pass an explicit config file").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	path := fspath.JoinStr(types.FilesystemPath(cfgDir), ConfigFileName+"."+ConfigFileExt).String()
	if !fileExists(path) {
		// No config file: every command is undefined.
		return Defaults(), "", nil
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file is readable").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(fmt.Errorf("failed to read config file: %w", err)).
			BuildError()
	}

	cfg, err := Parse(data, path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid TOML syntax").
			WithSuggestion("Verify that every [command.<name>] table has a non-empty base").
			WithSuggestion("Remove keys that are not part of the configuration format").
			WithIssue(issue.ConfigParseErrorId).
			Wrap(err).
			BuildError()
	}
	return cfg, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath types.FilesystemPath, appName string) (string, error) {
	if configDirPath.IsSet() {
		return configDirPath.String(), nil
	}
	return ConfigDir(appName)
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}
