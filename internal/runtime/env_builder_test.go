// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"slices"
	"testing"

	"github.com/shrun-cli/shrun/internal/config"
)

func TestDefaultEnvBuilder_Build(t *testing.T) {
	t.Parallel()

	host := []string{"HOME=/home/u", "PATH=/usr/bin", "EMPTY=", "LESS=-R", "malformed"}

	tests := []struct {
		name string
		sets []config.EnvSet
		want []string
	}{
		{
			name: "no mutations keeps host order",
			want: []string{"HOME=/home/u", "PATH=/usr/bin", "EMPTY=", "LESS=-R"},
		},
		{
			name: "set replaces in place and adds new at the end",
			sets: []config.EnvSet{{"HOME": config.SetEnv("/tmp"), "EDITOR": config.ShorthandEnv("vim")}},
			want: []string{"HOME=/tmp", "PATH=/usr/bin", "EMPTY=", "LESS=-R", "EDITOR=vim"},
		},
		{
			name: "unset removes",
			sets: []config.EnvSet{{"LESS": config.UnsetEnv(), "NOPE": config.UnsetEnv()}},
			want: []string{"HOME=/home/u", "PATH=/usr/bin", "EMPTY="},
		},
		{
			name: "append to existing value",
			sets: []config.EnvSet{{"PATH": config.AppendEnv(config.Many("/opt/bin", "/usr/local/bin"), ":")}},
			want: []string{"HOME=/home/u", "PATH=/usr/bin:/opt/bin:/usr/local/bin", "EMPTY=", "LESS=-R"},
		},
		{
			name: "append to empty and missing values",
			sets: []config.EnvSet{{
				"EMPTY":  config.AppendEnv(config.Single("x"), ":"),
				"CFLAGS": config.AppendEnv(config.Many("-O2", "-g"), ""),
			}},
			want: []string{"HOME=/home/u", "PATH=/usr/bin", "EMPTY=x", "LESS=-R", "CFLAGS=-O2 -g"},
		},
		{
			name: "command set applies after default set",
			sets: []config.EnvSet{
				{"EDITOR": config.SetEnv("nano"), "LESS": config.UnsetEnv()},
				{"EDITOR": config.SetEnv("vim"), "LESS": config.SetEnv("-X")},
			},
			want: []string{"HOME=/home/u", "PATH=/usr/bin", "EMPTY=", "LESS=-X", "EDITOR=vim"},
		},
		{
			name: "default append then command append",
			sets: []config.EnvSet{
				{"PATH": config.AppendEnv(config.Single("/a"), ":")},
				{"PATH": config.AppendEnv(config.Single("/b"), ":")},
			},
			want: []string{"HOME=/home/u", "PATH=/usr/bin:/a:/b", "EMPTY=", "LESS=-R"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := &DefaultEnvBuilder{Environ: func() []string { return host }}
			got := b.Build(tt.sets...)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultEnvBuilder_NameOrderWithinSet(t *testing.T) {
	t.Parallel()

	b := &DefaultEnvBuilder{Environ: func() []string { return nil }}
	got := b.Build(config.EnvSet{
		"B": config.SetEnv("2"),
		"A": config.SetEnv("1"),
		"C": config.SetEnv("3"),
	})
	if !slices.Equal(got, []string{"A=1", "B=2", "C=3"}) {
		t.Errorf("Build() = %q", got)
	}
}

func TestDefaultEnvBuilder_ReaddAfterUnset(t *testing.T) {
	t.Parallel()

	b := &DefaultEnvBuilder{Environ: func() []string { return []string{"X=1", "Y=2"} }}
	got := b.Build(config.EnvSet{"X": config.UnsetEnv()}, config.EnvSet{"X": config.SetEnv("3")})
	if !slices.Equal(got, []string{"X=3", "Y=2"}) {
		t.Errorf("Build() = %q", got)
	}
}
