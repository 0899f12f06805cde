// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shrun-cli/shrun/internal/compose"
	"github.com/shrun-cli/shrun/internal/config"
	"github.com/shrun-cli/shrun/internal/runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

func (r *runner) run(cmd *cobra.Command, args []string) error {
	r.opts = readOptions(r.viper)
	logger := newLogger(cmd.ErrOrStderr(), r.program.Name, r.opts)
	inv := parseInvocation(args)

	logger.Debug("options",
		"debug", r.opts.Debug,
		"verbose", r.opts.Verbose,
		"dry-run", r.opts.DryRun,
		"list", r.opts.List,
		"passthrough", passthroughString(r.opts.Passthrough),
		"config", r.opts.ConfigPath,
		"command", inv.Command,
		"params", len(inv.Params),
		"extra", len(inv.Extra),
	)

	ctx := cmd.Context()
	loaded, err := r.provider.Load(ctx, config.LoadOptions{
		ConfigFilePath: r.opts.ConfigPath,
		AppName:        r.program.Name,
	})
	if err != nil {
		return err
	}
	logConfig(logger, loaded)

	out := cmd.OutOrStdout()
	if r.opts.List {
		if inv.Command == "" {
			return printCommandList(out, loaded.Config)
		}
		return printCommand(out, loaded.Config, inv.Command)
	}
	if inv.Command == "" {
		return errMissingCommand
	}

	resolution, argv, err := composeArgv(loaded.Config, inv, r.opts.Passthrough)
	if err != nil {
		return err
	}
	if resolution.Synthesized {
		logger.Debug("passing undefined command through", "command", inv.Command)
	}

	line := quoteArgv(argv)
	if r.opts.DryRun {
		_, err := fmt.Fprintln(out, line)
		return err
	}

	logger.Info("running command", "argv", line)
	logEnv(logger, "[default.env]", loaded.Config.Default.Env)
	logEnv(logger, "[command."+inv.Command+".env]", resolution.Command.Env)
	env := r.envs.Build(loaded.Config.Default.Env, resolution.Command.Env)

	// Last chance to honor an interrupt: past this point the process is gone.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.executor.Exec(argv, env); err != nil {
		var failed *runtime.ProcessReplacementFailedError
		if errors.As(err, &failed) {
			return &ExitError{Code: failed.ExitCode(), Err: err}
		}
		return err
	}
	return nil
}

// composeArgv resolves the invoked command and assembles its argument vector.
func composeArgv(cfg *config.Config, inv Invocation, passthrough *bool) (compose.Resolution, []string, error) {
	resolution, err := compose.Resolve(cfg, inv.Command, passthrough)
	if err != nil {
		return compose.Resolution{}, nil, err
	}

	composer := compose.NewComposer(cfg.Default, resolution.Command)
	if err := composer.AddParameters(inv.Params); err != nil {
		return compose.Resolution{}, nil, err
	}
	return resolution, composer.Args(inv.Extra), nil
}

// quoteArgv renders argv as a bash command line, quoting only the tokens
// that need it.
func quoteArgv(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			q = strconv.Quote(arg)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

func logConfig(logger *log.Logger, loaded config.LoadResult) {
	if logger.GetLevel() > log.DebugLevel {
		return
	}

	path := loaded.Path
	if path == "" {
		path = "(none, using defaults)"
	}
	data, err := config.Marshal(loaded.Config)
	if err != nil {
		logger.Debug("config loaded", "path", path, "err", err)
		return
	}
	logger.Debug("config loaded", "path", path, "config", string(data))
}

func logEnv(logger *log.Logger, table string, env config.EnvSet) {
	for _, name := range env.Names() {
		logger.Info("environment", "table", table, "name", name, "change", env[name].String())
	}
}

func passthroughString(p *bool) string {
	if p == nil {
		return "unset"
	}
	return strconv.FormatBool(*p)
}
