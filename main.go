// SPDX-License-Identifier: MPL-2.0

// gits runs one git command across every repository in a multi-repo workspace.
package main

import cmd "gits-cli/cmd/gits"

func main() {
	cmd.Execute()
}
