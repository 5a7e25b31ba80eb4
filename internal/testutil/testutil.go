// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// FakeRunner returns canned tool output keyed by the space-joined argv.
// Commands with no entry in Outputs or Errs fail with exec.ErrNotFound, the
// way a missing binary does.
type FakeRunner struct {
	Outputs map[string]string
	Errs    map[string]error

	mu    sync.Mutex
	calls [][]string
}

// NewFakeRunner creates a FakeRunner answering the given commands.
func NewFakeRunner(outputs map[string]string) *FakeRunner {
	if outputs == nil {
		outputs = map[string]string{}
	}
	return &FakeRunner{Outputs: outputs, Errs: map[string]error{}}
}

// Output records the call and returns the canned result.
func (f *FakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	argv := append([]string{name}, args...)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, argv)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := strings.Join(argv, " ")
	if err, ok := f.Errs[key]; ok {
		return nil, err
	}
	out, ok := f.Outputs[key]
	if !ok {
		return nil, exec.ErrNotFound
	}
	return []byte(out), nil
}

// Calls returns the argv of every command run so far.
func (f *FakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// MustWriteFile writes content to path, creating parent directories.
// The test fails immediately on error.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteDocument creates <dir>/<base>.tex in a fresh temp dir and, when fls is
// non-empty, the matching <base>.fls trace. It returns the root file path.
func WriteDocument(t testing.TB, base, fls string) string {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, base+".tex")
	MustWriteFile(t, root, `\documentclass{article}`)
	if fls != "" {
		MustWriteFile(t, filepath.Join(dir, base+".fls"), fls)
	}
	return root
}

// MustChdir changes the current working directory to dir and restores the
// original one when the test ends. Tests using it must not run in parallel.
func MustChdir(t testing.TB, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", originalWd, err)
		}
	})
}
