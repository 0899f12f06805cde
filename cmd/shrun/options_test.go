// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"reflect"
	"testing"

	"github.com/shrun-cli/shrun/internal/app"
	"github.com/shrun-cli/shrun/internal/compose"
	"github.com/shrun-cli/shrun/pkg/types"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestParseInvocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want Invocation
	}{
		{
			name: "empty",
			args: nil,
			want: Invocation{},
		},
		{
			name: "command only",
			args: []string{"gc"},
			want: Invocation{Command: "gc", Params: []compose.Parameter{}},
		},
		{
			name: "parameters",
			args: []string{"gc", "nopager", "msg=a=b"},
			want: Invocation{Command: "gc", Params: []compose.Parameter{
				{Name: "nopager"},
				{Name: "msg", Value: "a=b", HasValue: true},
			}},
		},
		{
			name: "forwarded after first separator",
			args: []string{"gc", "amend", "--", "--allow-empty", "--", "x"},
			want: Invocation{
				Command: "gc",
				Params:  []compose.Parameter{{Name: "amend"}},
				Extra:   []string{"--allow-empty", "--", "x"},
			},
		},
		{
			name: "empty forwarded list",
			args: []string{"gc", "--"},
			want: Invocation{Command: "gc", Params: []compose.Parameter{}, Extra: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseInvocation(tt.args)
			if got.Command != tt.want.Command {
				t.Errorf("Command = %q, want %q", got.Command, tt.want.Command)
			}
			if len(got.Params) != len(tt.want.Params) || (len(got.Params) > 0 && !reflect.DeepEqual(got.Params, tt.want.Params)) {
				t.Errorf("Params = %+v, want %+v", got.Params, tt.want.Params)
			}
			if len(got.Extra) != len(tt.want.Extra) || (len(got.Extra) > 0 && !reflect.DeepEqual(got.Extra, tt.want.Extra)) {
				t.Errorf("Extra = %q, want %q", got.Extra, tt.want.Extra)
			}
		})
	}
}

func parseOptions(t *testing.T, prefix string, args ...string) (Options, []string) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "shrun"}
	v := viper.New()
	if err := bindFlags(rootCmd, v, app.Program{Name: "shrun", EnvPrefix: prefix}); err != nil {
		t.Fatalf("bindFlags() error = %v", err)
	}
	if err := rootCmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	return readOptions(v), rootCmd.Flags().Args()
}

func TestReadOptionsFlags(t *testing.T) {
	t.Parallel()

	opts, rest := parseOptions(t, "SHRUN_FLAGS_TEST", "-d", "-v", "--dry-run", "-l", "-p", "--config", "/tmp/c.toml", "gc", "-v", "--", "x")

	want := Options{Debug: true, Verbose: true, DryRun: true, List: true, ConfigPath: types.FilesystemPath("/tmp/c.toml")}
	gotPassthrough := opts.Passthrough
	opts.Passthrough = nil
	if opts != want {
		t.Errorf("options = %+v, want %+v", opts, want)
	}
	if gotPassthrough == nil || !*gotPassthrough {
		t.Errorf("Passthrough = %v, want true", gotPassthrough)
	}

	// Flags after COMMAND belong to the command.
	wantRest := []string{"gc", "-v", "--", "x"}
	if !reflect.DeepEqual(rest, wantRest) {
		t.Errorf("args = %q, want %q", rest, wantRest)
	}
}

func TestReadOptionsPassthroughUnset(t *testing.T) {
	t.Parallel()

	opts, _ := parseOptions(t, "SHRUN_UNSET_TEST", "gc")
	if opts.Passthrough != nil {
		t.Errorf("Passthrough = %v, want nil", *opts.Passthrough)
	}
}

func TestReadOptionsPassthroughFalse(t *testing.T) {
	t.Parallel()

	opts, _ := parseOptions(t, "SHRUN_FALSE_TEST", "--passthrough=false", "gc")
	if opts.Passthrough == nil || *opts.Passthrough {
		t.Errorf("Passthrough = %v, want false", opts.Passthrough)
	}
}

func TestReadOptionsEnvironment(t *testing.T) {
	t.Setenv("GX_DRY_RUN", "true")
	t.Setenv("GX_PASSTHROUGH", "false")
	t.Setenv("GX_CONFIG", "/etc/gx.toml")
	t.Setenv("GX_VERBOSE", "1")

	opts, _ := parseOptions(t, "GX", "gc")
	if !opts.DryRun || !opts.Verbose {
		t.Errorf("DryRun, Verbose = %v, %v, want true, true", opts.DryRun, opts.Verbose)
	}
	if opts.ConfigPath != "/etc/gx.toml" {
		t.Errorf("ConfigPath = %q, want /etc/gx.toml", opts.ConfigPath)
	}
	if opts.Passthrough == nil || *opts.Passthrough {
		t.Errorf("Passthrough = %v, want false", opts.Passthrough)
	}
}

func TestReadOptionsFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("GY_PASSTHROUGH", "false")
	t.Setenv("GY_CONFIG", "/etc/gy.toml")

	opts, _ := parseOptions(t, "GY", "-p", "--config", "/tmp/other.toml", "gc")
	if opts.Passthrough == nil || !*opts.Passthrough {
		t.Errorf("Passthrough = %v, want true", opts.Passthrough)
	}
	if opts.ConfigPath != "/tmp/other.toml" {
		t.Errorf("ConfigPath = %q, want /tmp/other.toml", opts.ConfigPath)
	}
}
