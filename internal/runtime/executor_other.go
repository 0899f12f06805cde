// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package runtime

import (
	"errors"
	"syscall"
)

// errExecUnsupported is returned where execve cannot replace the process.
var errExecUnsupported = errors.New("process replacement is not supported on this platform")

func execve(string, []string, []string) error {
	return errExecUnsupported
}

func errnoName(syscall.Errno) string {
	return ""
}
