// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the tlpkgs command-line interface.
//
// The root command takes the root file of a LaTeX document, reads the .fls
// trace a previous latexmk run left next to it, and prints the TeX Live
// packages the build used.
package cmd
