// SPDX-License-Identifier: MPL-2.0

package compose

// Assemble builds the final argument vector:
//
//	[base[0]] ++ head ++ base[1:] ++ middle ++ extra ++ tail
//
// base must hold at least the executable. The result is always a new slice.
// Assemble panics if base is empty or if a base token or an extra argument
// contains a NUL byte.
func Assemble(base, head, middle, tail, extra []string) []string {
	if len(base) == 0 {
		panic("compose: empty base")
	}
	for _, tok := range base {
		mustNotContainNUL("base token", tok)
	}
	for _, arg := range extra {
		mustNotContainNUL("forwarded argument", arg)
	}

	argv := make([]string, 0, len(base)+len(head)+len(middle)+len(extra)+len(tail))
	argv = append(argv, base[0])
	argv = append(argv, head...)
	argv = append(argv, base[1:]...)
	argv = append(argv, middle...)
	argv = append(argv, extra...)
	argv = append(argv, tail...)
	return argv
}
