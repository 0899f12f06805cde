// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/shrun-cli/shrun/pkg/types"
)

var (
	// ErrProcessReplacementFailed is the sentinel error wrapped by
	// ProcessReplacementFailedError.
	ErrProcessReplacementFailed = errors.New("process replacement failed")
	// ErrEmptyArgv is returned when Exec is called without an executable.
	ErrEmptyArgv = errors.New("empty argument vector")
)

type (
	// Executor replaces the current process image. Exec returns only on failure.
	Executor interface {
		Exec(argv, env []string) error
	}

	// ProcessExecutor implements Executor with execvp semantics: a name
	// without '/' is searched in PATH, any other name is used as is.
	ProcessExecutor struct {
		lookPath func(file string) (string, error)
		execve   func(path string, argv, env []string) error
		getenv   func(key string) string
	}

	// ProcessReplacementFailedError is returned when the executable could not
	// be found or execve failed.
	ProcessReplacementFailedError struct {
		Executable string
		Errno      syscall.Errno
	}
)

// NewProcessExecutor returns an executor backed by exec.LookPath and execve.
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{lookPath: exec.LookPath, execve: execve, getenv: os.Getenv}
}

// Exec replaces the current process with argv run in env. It does not
// return on success.
func (e *ProcessExecutor) Exec(argv, env []string) error {
	if len(argv) == 0 {
		return ErrEmptyArgv
	}

	file := argv[0]
	path := file
	if !strings.Contains(file, "/") {
		found, err := e.lookPath(file)
		if err != nil && !errors.Is(err, exec.ErrDot) {
			return &ProcessReplacementFailedError{Executable: file, Errno: e.lookupErrno(file, err)}
		}
		path = found
	}

	err := e.execve(path, argv, env)
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &ProcessReplacementFailedError{Executable: file, Errno: errno}
	}
	return fmt.Errorf("%w: %s: %w", ErrProcessReplacementFailed, file, err)
}

// lookupErrno maps a PATH lookup failure to the errno execvp reports.
// exec.LookPath skips entries that exist but cannot be executed; execvp
// reports EACCES for those instead of ENOENT.
func (e *ProcessExecutor) lookupErrno(file string, err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	if e.presentOnPath(file) {
		return syscall.EACCES
	}
	return syscall.ENOENT
}

// presentOnPath reports whether some PATH directory has an entry named file.
func (e *ProcessExecutor) presentOnPath(file string) bool {
	getenv := e.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, dir := range filepath.SplitList(getenv("PATH")) {
		if dir == "" {
			dir = "."
		}
		if _, err := os.Stat(filepath.Join(dir, file)); err == nil {
			return true
		}
	}
	return false
}

// Error renders the failure the way a shell does: "<executable>: <message>".
func (e *ProcessReplacementFailedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Executable, e.Errno.Error())
}

// Unwrap returns ErrProcessReplacementFailed and the errno.
func (e *ProcessReplacementFailedError) Unwrap() []error {
	return []error{ErrProcessReplacementFailed, e.Errno}
}

// ExitCode returns the shell convention status for the failure: 127 when
// the executable does not exist, 126 otherwise.
func (e *ProcessReplacementFailedError) ExitCode() types.ExitCode {
	if e.Errno == syscall.ENOENT {
		return types.ExitNotFound
	}
	return types.ExitCannotExecute
}

// ErrnoName returns the symbolic errno name (for example "ENOENT").
func (e *ProcessReplacementFailedError) ErrnoName() string {
	return errnoName(e.Errno)
}
