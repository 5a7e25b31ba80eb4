// SPDX-License-Identifier: MPL-2.0

// Package trace reads the .fls file list that LaTeX writes in recorder mode
// and extracts the distribution files a build read.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// inputMarker starts every line that records a file read by the engine.
const inputMarker = "INPUT"

// MissingError reports that the trace of a document does not exist.
type MissingError struct {
	Path string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("cannot find the file <%s>; please compile the document using latexmk", e.Path)
}

// Path returns the trace file of rootFile: same directory, same base name
// without its extension, ".fls" extension.
func Path(rootFile string) string {
	dir, base := filepath.Split(rootFile)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(dir, base+".fls")
}

// Check returns a MissingError unless path names a regular file.
func Check(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return &MissingError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("failed to stat trace file: %w", err)
	}
	return nil
}

// ParseFile parses the trace at path. See Parse.
func ParseFile(path, texmfDist string) ([]string, error) {
	if err := Check(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	keys, err := Parse(f, texmfDist)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keys, nil
}

// Parse returns the database keys of the INPUT files below texmfDist, in the
// order they appear. A key is the file path relative to the parent of
// texmfDist, e.g. "texmf-dist/tex/latex/foo/foo.sty". Duplicates are kept.
func Parse(r io.Reader, texmfDist string) ([]string, error) {
	// tlpdb runfiles always use forward slashes. Clean drops a trailing
	// slash so Dir yields the parent, not the root itself.
	texmfDist = path.Clean(filepath.ToSlash(texmfDist))
	parent := path.Dir(texmfDist)
	if !strings.HasSuffix(parent, "/") {
		parent += "/"
	}

	var keys []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, inputMarker) {
			continue
		}

		fields := strings.Fields(line)
		file := filepath.ToSlash(fields[len(fields)-1])
		if !strings.HasPrefix(file, texmfDist) {
			continue
		}
		keys = append(keys, strings.TrimPrefix(file, parent))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
