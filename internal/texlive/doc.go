// SPDX-License-Identifier: MPL-2.0

// Package texlive talks to the TeX Live command-line tools and turns the
// package database they expose into lookup tables.
//
// Two external commands are used: kpsewhich, to locate the TEXMFDIST tree,
// and tlmgr, to dump the local package database (tlpdb) as JSON. Both are
// invoked through a Runner so tests can substitute canned output.
package texlive
