// SPDX-License-Identifier: MPL-2.0

// Package runtime replaces the current process with the composed command.
//
// ProcessExecutor resolves the executable with execvp lookup semantics and
// calls execve. On success Exec never returns. EnvBuilder produces the child
// environment from the host environment and the configured mutations, the
// [default.env] table first and the command's env table second.
package runtime
