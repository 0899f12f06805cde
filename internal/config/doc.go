// SPDX-License-Identifier: MPL-2.0

// Package config holds the launcher's configuration model and its TOML loader.
//
// The configuration is read from <config dir>/<program>/config.toml where the
// config dir follows platform conventions ($XDG_CONFIG_HOME or ~/.config on
// Linux, ~/Library/Application Support on macOS, %APPDATA% on Windows) and
// <program> is the name the binary was invoked as.
//
// Loading is a three step pipeline: go-toml/v2 parses the file into a generic
// tree, the tree is validated against the embedded CUE schema
// (config_schema.cue) and mapstructure decodes it into the typed model. The
// resulting Config is read-only for the rest of the process.
package config
