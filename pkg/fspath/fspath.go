// SPDX-License-Identifier: MPL-2.0

// Package fspath provides path helpers that accept and return
// types.FilesystemPath, for paths the user supplies through flags and
// environment variables.
package fspath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shrun-cli/shrun/pkg/types"
)

// ErrNoHomeDir is returned by ExpandHome when the path starts with "~" and
// the home directory cannot be determined.
var ErrNoHomeDir = errors.New("cannot expand ~: home directory unknown")

// JoinStr joins a typed base path with raw string segments.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Paths are not shell-expanded when they come from the environment, so
// SHRUN_CONFIG=~/shrun.toml would otherwise be taken literally. "~user"
// forms are left untouched.
func ExpandHome(p types.FilesystemPath) (types.FilesystemPath, error) {
	s := string(p)
	if s != "~" && !strings.HasPrefix(s, "~/") && !strings.HasPrefix(s, "~"+string(filepath.Separator)) {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: %s", ErrNoHomeDir, s)
	}
	return types.FilesystemPath(filepath.Join(home, s[1:])), nil
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}
