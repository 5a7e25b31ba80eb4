// SPDX-License-Identifier: MPL-2.0

// Command tlpkgs lists the TeX Live packages a LaTeX document uses.
package main

import cmd "github.com/tlpkgs/tlpkgs/cmd/tlpkgs"

func main() {
	cmd.Execute()
}
