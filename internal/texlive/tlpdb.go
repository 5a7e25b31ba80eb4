// SPDX-License-Identifier: MPL-2.0

package texlive

import (
	"encoding/json"
	"fmt"

	"github.com/tlpkgs/tlpkgs/internal/dag"
)

type (
	// Database is the subset of `tlmgr dump-tlpdb --json` used here.
	Database struct {
		Main *Section `json:"main"`
	}

	// Section is one tlpdb, normally the "main" installation database.
	Section struct {
		Packages []Package `json:"tlpkgs"`
	}

	// Package is a single TeX Live package record.
	Package struct {
		Name string `json:"name"`
		// Runfiles are paths relative to the installation root,
		// e.g. "texmf-dist/tex/latex/foo/foo.sty".
		Runfiles []string `json:"runfiles"`
		Depends  []string `json:"depends"`
	}

	// Index holds the lookups derived from a Database.
	Index struct {
		// Files maps a runfile path to its owning package.
		Files map[string]string
		// Depends maps a package name to its declared dependencies, verbatim.
		Depends map[string][]string
	}
)

// DecodeDatabase parses the JSON dump. Structural checks happen in BuildIndex.
func DecodeDatabase(data []byte) (*Database, error) {
	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &db, nil
}

// BuildIndex makes one pass over the packages of db. When two packages claim
// the same runfile the later one wins. Packages without runfiles or depends
// are accepted; a missing "main", "tlpkgs" or package name is a SchemaError.
func BuildIndex(db *Database) (*Index, error) {
	if db == nil || db.Main == nil {
		return nil, &SchemaError{Field: "main"}
	}
	if db.Main.Packages == nil {
		return nil, &SchemaError{Field: "main.tlpkgs"}
	}

	idx := &Index{
		Files:   make(map[string]string),
		Depends: make(map[string][]string, len(db.Main.Packages)),
	}
	for i, pkg := range db.Main.Packages {
		if pkg.Name == "" {
			return nil, &SchemaError{Field: fmt.Sprintf("main.tlpkgs[%d].name", i)}
		}
		for _, file := range pkg.Runfiles {
			idx.Files[file] = pkg.Name
		}
		idx.Depends[pkg.Name] = pkg.Depends
	}
	return idx, nil
}

// Owner returns the package owning the runfile key.
func (idx *Index) Owner(key string) (string, bool) {
	name, ok := idx.Files[key]
	return name, ok
}

// Graph builds the dependency graph of all indexed packages.
func (idx *Index) Graph() *dag.Graph {
	g := dag.New()
	for name, deps := range idx.Depends {
		g.AddNode(name)
		for _, dep := range deps {
			g.AddEdge(name, dep)
		}
	}
	return g
}
