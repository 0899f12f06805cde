// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shrun-cli/shrun/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
[default]
passthrough_unknown_command = true
placeholder = "@@"

[default.env]
EDITOR = "vim"

[command.gc]
base = ["git", "commit"]
placeholder = "%"

[command.gc.headparams]
nopager = "--no-pager"

[command.gc.middleparams]
msg = ["-m", "%"]
amend = "--amend"

[command.gc.tailparams]
path = "%"

[command.gc.env]
GIT_PAGER = { op = "set", value = "cat" }
LESS = { op = "unset" }
PATH = { op = "append", value = ["/opt/bin", "/usr/local/bin"], separator = ":" }
FLAGS = { op = "append", value = "-O2" }

[command.ll]
base = "ls"
`

func TestParse_FullConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullConfig), "config.toml")
	require.NoError(t, err)

	assert.True(t, cfg.Default.PassthroughUnknownCommand)
	assert.Equal(t, Placeholder("@@"), cfg.Default.Placeholder)
	assert.True(t, cfg.Default.Env["EDITOR"].Equal(ShorthandEnv("vim")))
	assert.Equal(t, []string{"gc", "ll"}, cfg.CommandNames())

	gc := cfg.Command("gc")
	require.NotNil(t, gc)
	assert.Equal(t, "git", gc.Executable())
	assert.Equal(t, []string{"commit"}, gc.Args())
	assert.False(t, gc.Base.IsSingle())
	assert.Equal(t, Placeholder("%"), gc.Placeholder)
	assert.Equal(t, []string{"--no-pager"}, gc.HeadParams["nopager"].Templates())
	assert.Equal(t, []string{"-m", "%"}, gc.MiddleParams["msg"].Templates())
	assert.Equal(t, []string{"amend", "msg"}, gc.MiddleParams.Names())
	assert.Equal(t, []string{"%"}, gc.TailParams["path"].Templates())

	assert.True(t, gc.Env["GIT_PAGER"].Equal(SetEnv("cat")))
	assert.True(t, gc.Env["LESS"].Equal(UnsetEnv()))
	assert.True(t, gc.Env["PATH"].Equal(AppendEnv(Many("/opt/bin", "/usr/local/bin"), ":")))
	flags := gc.Env["FLAGS"]
	assert.Equal(t, DefaultAppendSeparator, flags.Separator)
	assert.True(t, flags.Value.IsSingle())

	ll := cfg.Command("ll")
	require.NotNil(t, ll)
	assert.True(t, ll.Base.IsSingle())
	assert.Empty(t, ll.Args())
	assert.False(t, ll.Placeholder.IsSet())
}

func TestParse_AbsentKeysKeepDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "empty file", data: ""},
		{name: "empty default table", data: "[default]\n"},
		{name: "only passthrough", data: "[default]\npassthrough_unknown_command = false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse([]byte(tt.data), "config.toml")
			require.NoError(t, err)
			assert.False(t, cfg.Default.PassthroughUnknownCommand)
			assert.Equal(t, Placeholder(DefaultPlaceholder), cfg.Default.Placeholder)
			assert.Empty(t, cfg.Commands)
		})
	}
}

func TestParse_EmptyExplicitSeparatorIsKept(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`[default.env]
CFLAGS = { op = "append", value = "-g", separator = "" }
`), "config.toml")
	require.NoError(t, err)
	assert.Empty(t, cfg.Default.Env["CFLAGS"].Separator)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantIs  error
		wantMsg string
	}{
		{name: "toml syntax", data: "[command.x\nbase = 1", wantIs: ErrConfigSyntax},
		{name: "missing base", data: "[command.x]\nplaceholder = \"%\"\n", wantMsg: "base"},
		{name: "empty base list", data: "[command.x]\nbase = []\n", wantMsg: "base"},
		{name: "empty executable", data: "[command.x]\nbase = \"\"\n", wantMsg: "base"},
		{name: "empty placeholder", data: "[default]\nplaceholder = \"\"\n", wantMsg: "placeholder"},
		{name: "unknown key", data: "[command.x]\nbase = \"ls\"\nalias = \"l\"\n", wantMsg: "alias"},
		{name: "unknown top-level table", data: "[commands.x]\nbase = \"ls\"\n", wantMsg: "commands"},
		{name: "unknown env op", data: "[default.env]\nA = { op = \"prepend\", value = \"x\" }\n", wantMsg: "env"},
		{name: "unset with value", data: "[default.env]\nA = { op = \"unset\", value = \"x\" }\n", wantMsg: "env"},
		{name: "template not a string", data: "[command.x]\nbase = \"ls\"\n[command.x.tailparams]\nn = 3\n", wantMsg: "tailparams"},
		{name: "base with integer", data: "[command.x]\nbase = [\"ls\", 1]\n", wantMsg: "base"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse([]byte(tt.data), "config.toml")
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_SyntaxErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("[default]\nplaceholder = \n"), "my.toml")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "my.toml", syntaxErr.File)
	assert.Equal(t, 2, syntaxErr.Line)
	assert.Positive(t, syntaxErr.Column)
}

func TestParse_FileTooLarge(t *testing.T) {
	t.Parallel()

	data := make([]byte, 5<<20)
	_, err := Parse(data, "huge.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "huge.toml")
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullConfig), "config.toml")
	require.NoError(t, err)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	again, err := Parse(data, "encoded.toml")
	require.NoError(t, err, "encoded config:\n%s", data)
	assert.Equal(t, cfg, again)
}

func TestMarshal_PreservesAuthoredForms(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Default.Env = EnvSet{
		"EDITOR": ShorthandEnv("vim"),
		"PAGER":  SetEnv("less"),
		"PATH":   AppendEnv(Single("/opt/bin"), ""),
	}
	cfg.Commands["one"] = &CommandConfig{Base: Many("ls")}
	cfg.Commands["two"] = &CommandConfig{Base: Single("ls")}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	again, err := Parse(data, "encoded.toml")
	require.NoError(t, err, "encoded config:\n%s", data)

	assert.True(t, again.Default.Env["EDITOR"].Shorthand)
	assert.False(t, again.Default.Env["PAGER"].Shorthand)
	assert.Equal(t, DefaultAppendSeparator, again.Default.Env["PATH"].Separator)
	assert.False(t, again.Command("one").Base.IsSingle())
	assert.True(t, again.Command("two").Base.IsSingle())
	assert.Equal(t, cfg, again)
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup only applies on Linux")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := ConfigDir("gx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "gx"), dir)

	path, err := ConfigPath("gx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "gx", "config.toml"), path)
}

func TestConfigDir_FallsBackToHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup only applies on Linux")
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	testutil.SetHomeDir(t, home)

	dir, err := ConfigDir("shrun")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "shrun"), dir)
}

func TestLoadFile_InvalidConfigIsActionable(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.toml", "[command.x]\n")

	_, err := loadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.False(t, errors.Is(err, ErrConfigSyntax))
}
