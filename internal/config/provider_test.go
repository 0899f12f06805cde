// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shrun-cli/shrun/internal/issue"
	"github.com/shrun-cli/shrun/internal/testutil"
	"github.com/shrun-cli/shrun/pkg/types"
)

func TestLoadOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       LoadOptions
		wantErrs   int
		wantAppErr bool
	}{
		{name: "app name only", opts: LoadOptions{AppName: "shrun"}},
		{name: "explicit file without app name", opts: LoadOptions{ConfigFilePath: "/tmp/config.toml"}},
		{name: "explicit dir without app name", opts: LoadOptions{ConfigDirPath: "/tmp/shrun"}},
		{name: "nothing set", opts: LoadOptions{}, wantErrs: 1, wantAppErr: true},
		{name: "whitespace file", opts: LoadOptions{ConfigFilePath: types.FilesystemPath("   "), AppName: "x"}, wantErrs: 1},
		{
			name:     "whitespace file and dir",
			opts:     LoadOptions{ConfigFilePath: types.FilesystemPath(" "), ConfigDirPath: types.FilesystemPath("\t")},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidLoadOptions) {
				t.Fatalf("Validate() error should wrap ErrInvalidLoadOptions, got: %v", err)
			}
			var loadErr *InvalidLoadOptionsError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error should be *InvalidLoadOptionsError, got: %T", err)
			}
			if len(loadErr.FieldErrors) != tt.wantErrs {
				t.Errorf("expected %d field errors, got %d: %v", tt.wantErrs, len(loadErr.FieldErrors), loadErr.FieldErrors)
			}
			if tt.wantAppErr && !errors.Is(loadErr.FieldErrors[0], ErrMissingAppName) {
				t.Errorf("expected ErrMissingAppName, got %v", loadErr.FieldErrors[0])
			}
		})
	}
}

func TestInvalidLoadOptionsError_Error(t *testing.T) {
	t.Parallel()

	single := &InvalidLoadOptionsError{FieldErrors: []error{errors.New("test error")}}
	if got := single.Error(); got != "invalid load options: test error" {
		t.Errorf("Error() = %q", got)
	}
	multiple := &InvalidLoadOptionsError{FieldErrors: []error{errors.New("a"), errors.New("b")}}
	if got := multiple.Error(); got != "invalid load options: 2 field errors" {
		t.Errorf("Error() = %q", got)
	}
}

func TestProvider_Load_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Parallel()

	res, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: types.FilesystemPath(t.TempDir())})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if res.Path != "" {
		t.Errorf("Path = %q, want empty", res.Path)
	}
	if res.Config.Default.Placeholder != DefaultPlaceholder {
		t.Errorf("Placeholder = %q, want %q", res.Config.Default.Placeholder, DefaultPlaceholder)
	}
	if len(res.Config.Commands) != 0 {
		t.Errorf("expected no commands, got %v", res.Config.CommandNames())
	}
}

func TestProvider_Load_DefaultLocation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte("[command.gs]\nbase = [\"git\", \"status\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: types.FilesystemPath(dir)})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}
	if cmd := res.Config.Command("gs"); cmd == nil || cmd.Executable() != "git" {
		t.Errorf("command gs not loaded: %+v", cmd)
	}
}

func TestProvider_Load_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: types.FilesystemPath(missing)})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	var actionable *issue.ActionableError
	if !errors.As(err, &actionable) {
		t.Fatalf("expected *issue.ActionableError, got %T", err)
	}
	if actionable.Resource != missing {
		t.Errorf("Resource = %q, want %q", actionable.Resource, missing)
	}
	if !actionable.HasSuggestions() {
		t.Error("expected suggestions on missing file error")
	}
}

func TestProvider_Load_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProvider().Load(ctx, LoadOptions{AppName: "shrun"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestProvider_Load_ExplicitFileUnderHome(t *testing.T) {
	home := t.TempDir()
	testutil.SetHomeDir(t, home)
	path := testutil.WriteFile(t, home, "shrun.toml", "[command.ll]\nbase = \"ls\"\n")

	res, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: "~/shrun.toml"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}
	if res.Config.Command("ll") == nil {
		t.Error("command ll not loaded")
	}
}
