// SPDX-License-Identifier: MPL-2.0

// Package compose turns a command name and the parameters supplied for it
// into the argument vector that is handed to the process executor.
//
// Resolve finds (or, for passthrough, synthesizes) the command definition.
// A Composer then classifies each parameter into the head, middle or tail
// bucket and substitutes its value into the parameter templates. Assemble
// merges the buckets with the base tokens and the forwarded arguments:
//
//	[base[0]] ++ head ++ base[1:] ++ middle ++ extra ++ tail
package compose
