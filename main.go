// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/shrun-cli/shrun/cmd/shrun"

func main() {
	cmd.Execute()
}
