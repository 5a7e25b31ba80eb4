// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	TraceNotFoundId Id = iota + 1
	ToolFailedId
	DatabaseInvalidId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue guidance as terminal markdown using the named
// glamour style ("auto", "dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	traceNotFoundIssue = &Issue{
		id: TraceNotFoundId,
		mdMsg: `
# No .fls trace found!

The package list is computed from the file trace that LaTeX writes when it
runs with ` + "`-recorder`" + `. The trace lives next to the root file and has
the same base name with an ` + "`.fls`" + ` extension.

## Things you can try:
- Compile the document with latexmk, which enables the recorder:
~~~
$ latexmk -pdf paper.tex
~~~
- Pass the root file of the document, not an included chapter
- Check that the build did not write its outputs to another directory`,
		docLinks: []HttpLink{"https://mgeier.github.io/latexmk.html"},
	}

	toolFailedIssue = &Issue{
		id: ToolFailedId,
		mdMsg: `
# A TeX Live tool failed!

` + "`kpsewhich`" + ` and ` + "`tlmgr`" + ` are queried for the distribution root and the
package database.

## Things you can try:
- Check that TeX Live's bin directory is on your PATH:
~~~
$ kpsewhich -var-value=TEXMFDIST
$ tlmgr dump-tlpdb --json --local | head -c 200
~~~
- Point the tool to a different command line in config.cue:
~~~cue
tlmgr: "docker exec texlive tlmgr"
~~~`,
		docLinks: []HttpLink{"https://tug.org/texlive/doc/tlmgr.html"},
	}

	databaseInvalidIssue = &Issue{
		id: DatabaseInvalidId,
		mdMsg: `
# Unexpected package database!

The JSON printed by ` + "`tlmgr dump-tlpdb --json`" + ` does not have the shape
` + "`{\"main\": {\"tlpkgs\": [...]}}`" + `.

## Things you can try:
- Upgrade tlmgr, JSON output needs TeX Live 2020 or newer:
~~~
$ tlmgr update --self
~~~
- Make sure nothing else writes to the tool's standard output`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Check the CUE syntax of your config file
- Known fields are ` + "`kpsewhich`, `tlmgr`, `preinstalled`, `verbose` and `format`" + `
- Run without a config file to use the defaults:
~~~
$ tlpkgs --config /dev/null paper.tex
~~~`,
	}

	issues = map[Id]*Issue{
		traceNotFoundIssue.Id():    traceNotFoundIssue,
		toolFailedIssue.Id():       toolFailedIssue,
		databaseInvalidIssue.Id():  databaseInvalidIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

// Get returns the issue registered for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
