// SPDX-License-Identifier: MPL-2.0

// Package app holds the process-wide identity derived once at start.
package app

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/shrun-cli/shrun/pkg/platform"
)

// ErrNoProgramName is returned when the program name cannot be derived from
// the process arguments.
var ErrNoProgramName = errors.New("failed to get program name")

// Program describes how the binary was invoked. The name selects the config
// directory and the environment variable prefix, so one binary can serve
// several configurations through symlinks.
type Program struct {
	// Name is the base name of argv[0], without ".exe" on Windows.
	Name string
	// EnvPrefix is Name upper-cased with every character that is not a
	// letter or digit replaced by '_'.
	EnvPrefix string
}

// Setup derives the Program from the process arguments. It must be called
// once before any configuration is loaded.
func Setup(args []string) (Program, error) {
	if len(args) == 0 {
		return Program{}, ErrNoProgramName
	}

	name := filepath.Base(args[0])
	if runtime.GOOS == platform.Windows {
		name = strings.TrimSuffix(name, ".exe")
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		return Program{}, ErrNoProgramName
	}

	return Program{Name: name, EnvPrefix: envPrefix(name)}, nil
}

func envPrefix(name string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, name)
}
