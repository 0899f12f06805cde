// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"slices"
	"strings"

	"github.com/shrun-cli/shrun/internal/app"
	"github.com/shrun-cli/shrun/internal/compose"
	"github.com/shrun-cli/shrun/pkg/types"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	flagDebug       = "debug"
	flagVerbose     = "verbose"
	flagDryRun      = "dry-run"
	flagList        = "list"
	flagPassthrough = "passthrough"
	flagConfig      = "config"

	// argsSeparator ends the parameters; later arguments are forwarded as is.
	argsSeparator = "--"
)

// errMissingCommand is returned when no COMMAND is given and --list is not set.
var errMissingCommand = errors.New("missing COMMAND")

type (
	// Options are the launcher options, resolved from flags and environment.
	Options struct {
		Debug   bool
		Verbose bool
		DryRun  bool
		List    bool
		// Passthrough is nil unless set on the command line or in the
		// environment; nil defers to passthrough_unknown_command.
		Passthrough *bool
		ConfigPath  types.FilesystemPath
	}

	// Invocation is the positional part of the command line.
	Invocation struct {
		Command string
		Params  []compose.Parameter
		Extra   []string
	}
)

// bindFlags declares the launcher flags on cmd and binds them to v, so that
// each one can also be set through <PREFIX>_<FLAG> environment variables.
func bindFlags(cmd *cobra.Command, v *viper.Viper, program app.Program) error {
	flags := cmd.Flags()
	addFlags(flags, program)

	v.SetEnvPrefix(program.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

func addFlags(flags *pflag.FlagSet, program app.Program) {
	flags.BoolP(flagDebug, "d", false, "log the loaded configuration and the resolved command")
	flags.BoolP(flagVerbose, "v", false, "log the command line and environment changes before running")
	flags.Bool(flagDryRun, false, "print the command line instead of running it")
	flags.BoolP(flagList, "l", false, "list defined commands, or show the definition of COMMAND")
	flags.BoolP(flagPassthrough, "p", false, "run undefined commands as executables (overrides passthrough_unknown_command)")
	flags.String(flagConfig, "", "configuration file (default <config dir>/"+program.Name+"/config.toml)")

	// Everything after COMMAND belongs to the launched command.
	flags.SetInterspersed(false)
}

// readOptions returns the options after flag parsing. Flags take precedence
// over environment variables.
func readOptions(v *viper.Viper) Options {
	opts := Options{
		Debug:      v.GetBool(flagDebug),
		Verbose:    v.GetBool(flagVerbose),
		DryRun:     v.GetBool(flagDryRun),
		List:       v.GetBool(flagList),
		ConfigPath: types.FilesystemPath(v.GetString(flagConfig)),
	}
	if v.IsSet(flagPassthrough) {
		passthrough := v.GetBool(flagPassthrough)
		opts.Passthrough = &passthrough
	}
	return opts
}

// parseInvocation splits the positional arguments into COMMAND, its
// parameters and the arguments forwarded after the first "--".
func parseInvocation(args []string) Invocation {
	if len(args) == 0 {
		return Invocation{}
	}

	inv := Invocation{Command: args[0]}
	rest := args[1:]
	if i := slices.Index(rest, argsSeparator); i >= 0 {
		inv.Extra = slices.Clone(rest[i+1:])
		rest = rest[:i]
	}
	inv.Params = compose.ParseParameters(rest)
	return inv
}
