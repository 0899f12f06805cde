// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/shrun-cli/shrun/internal/app"
	"github.com/shrun-cli/shrun/internal/config"
	"github.com/shrun-cli/shrun/internal/runtime"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set via -ldflags at build time.
	Version = "dev"
	// Commit is set via -ldflags at build time.
	Commit = "unknown"
	// BuildDate is set via -ldflags at build time.
	BuildDate = "unknown"
)

// runner holds what one invocation of the root command needs. Tests replace
// the executor so that nothing is actually exec'd.
type runner struct {
	program  app.Program
	provider config.Provider
	envs     runtime.EnvBuilder
	executor runtime.Executor
	viper    *viper.Viper
	opts     Options
}

func newRunner(program app.Program) *runner {
	return &runner{
		program:  program,
		provider: config.NewProvider(),
		envs:     runtime.NewDefaultEnvBuilder(),
		executor: runtime.NewProcessExecutor(),
		viper:    viper.New(),
	}
}

// Execute runs the launcher with os.Args and exits with its status. It only
// returns control to the OS: a successful run replaces the process image.
func Execute() {
	program, err := app.Setup(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
		os.Exit(int(exitCodeFor(err)))
	}

	r := newRunner(program)
	rootCmd, err := newRootCommand(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
		os.Exit(int(exitCodeFor(err)))
	}

	// fang's manpage and completion subcommands would shadow user commands
	// of the same name.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(r.handleError),
	); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

func newRootCommand(r *runner) (*cobra.Command, error) {
	name := r.program.Name
	rootCmd := &cobra.Command{
		Use:   name + " [flags] COMMAND [PARAM...] [-- EXTRA...]",
		Short: "Launch commands through short names",
		Long: TitleStyle.Render(name) + SubtitleStyle.Render(" - launch commands through short names") + `

COMMAND names a [command.<name>] table of the configuration file. Each PARAM
is "name" or "name=value"; it is expanded from the headparams, middleparams
or tailparams template that declares it, substituting the placeholder with
the value. Arguments after "--" are forwarded unchanged.

Flags must come before COMMAND. Every flag can also be set through the
environment, for example ` + r.program.EnvPrefix + `_DRY_RUN=1.`,
		Example: "  " + name + " gc nopager msg=\"fix typo\" -- --allow-empty\n" +
			"  " + name + " --list gc\n" +
			"  " + name + " --dry-run --passthrough ls -- -la",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:              r.run,
	}

	if err := bindFlags(rootCmd, r.viper, r.program); err != nil {
		return nil, err
	}
	return rootCmd, nil
}

func getVersionString() string {
	if Version == "dev" {
		return fmt.Sprintf("%s (built from source)", Version)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
