// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/shrun-cli/shrun/internal/compose"
	"github.com/shrun-cli/shrun/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// printCommandList writes one line per defined command: its name and base
// tokens, sorted by name.
func printCommandList(w io.Writer, cfg *config.Config) error {
	names := cfg.CommandNames()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, SubtitleStyle.Render("No commands defined."))
		return err
	}

	width := 0
	for _, name := range names {
		width = max(width, lipgloss.Width(name))
	}

	var b strings.Builder
	for _, name := range names {
		pad := strings.Repeat(" ", width-lipgloss.Width(name))
		fmt.Fprintf(&b, "%s%s  %s\n", CmdStyle.Render(name), pad, quoteArgv(cfg.Commands[name].Base.Values()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// printCommand writes the definition of a single command, with the
// placeholder that applies to it and the environment changes it makes.
func printCommand(w io.Writer, cfg *config.Config, name string) error {
	cmd := cfg.Command(name)
	if cmd == nil {
		return &compose.CommandNotDefinedError{Name: name}
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(name) + "\n")

	writeField(&b, "base", quoteArgv(cmd.Base.Values()))

	source := "default"
	if cmd.Placeholder.IsSet() {
		source = "command"
	}
	placeholder := compose.EffectivePlaceholder(cfg.Default, cmd)
	writeField(&b, "placeholder", placeholder.String()+" "+SubtitleStyle.Render("("+source+")"))

	tables := []struct {
		bucket compose.Bucket
		params config.ParamTable
	}{
		{compose.BucketHead, cmd.HeadParams},
		{compose.BucketMiddle, cmd.MiddleParams},
		{compose.BucketTail, cmd.TailParams},
	}
	for _, t := range tables {
		b.WriteString(labelStyle.Render(t.bucket.TableName()+":") + "\n")
		writeParams(&b, t.params)
	}

	b.WriteString(labelStyle.Render("env:") + "\n")
	if len(cfg.Default.Env) == 0 && len(cmd.Env) == 0 {
		b.WriteString("  " + SubtitleStyle.Render("(none)") + "\n")
	}
	writeEnv(&b, cfg.Default.Env, "default")
	writeEnv(&b, cmd.Env, "command")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(label+":"), value)
}

func writeParams(b *strings.Builder, params config.ParamTable) {
	if len(params) == 0 {
		b.WriteString("  " + SubtitleStyle.Render("(none)") + "\n")
		return
	}
	for _, name := range params.Names() {
		fmt.Fprintf(b, "  %s = %s\n", CmdStyle.Render(name), VerboseStyle.Render(quoteArgv(params[name].Templates())))
	}
}

func writeEnv(b *strings.Builder, env config.EnvSet, source string) {
	for _, name := range env.Names() {
		fmt.Fprintf(b, "  %s %s %s\n",
			CmdStyle.Render(name),
			VerboseStyle.Render(env[name].String()),
			SubtitleStyle.Render("("+source+")"))
	}
}
