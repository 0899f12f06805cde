// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostic logger. Only warnings are shown unless
// --verbose or --debug raise the level.
func newLogger(w io.Writer, prefix string, opts Options) *log.Logger {
	level := log.WarnLevel
	switch {
	case opts.Debug:
		level = log.DebugLevel
	case opts.Verbose:
		level = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}
