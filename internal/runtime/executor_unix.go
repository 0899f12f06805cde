// SPDX-License-Identifier: MPL-2.0

//go:build unix

package runtime

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func execve(path string, argv, env []string) error {
	return unix.Exec(path, argv, env)
}

func errnoName(errno syscall.Errno) string {
	return unix.ErrnoName(errno)
}
