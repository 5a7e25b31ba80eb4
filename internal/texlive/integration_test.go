// SPDX-License-Identifier: MPL-2.0

package texlive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/pkg/stdcopy"
	"github.com/testcontainers/testcontainers-go"
)

const texliveImage = "texlive/texlive:latest-minimal"

// containerRunner runs commands inside a running test container.
type containerRunner struct {
	c testcontainers.Container
}

// Output returns the command's stdout only; stderr is kept for the error so
// tlmgr warnings cannot leak into the JSON dump.
func (r containerRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	code, reader, err := r.c.Exec(ctx, append([]string{name}, args...))
	if err != nil {
		return nil, err
	}
	stdout, stderr, err := demuxExecOutput(reader)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return stdout, fmt.Errorf("exit status %d: %s", code, strings.TrimSpace(string(stderr)))
	}
	return stdout, nil
}

// demuxExecOutput splits a docker exec attach stream into stdout and stderr.
func demuxExecOutput(r io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, r); err != nil {
		return nil, nil, fmt.Errorf("demultiplex exec output: %w", err)
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

func TestDemuxExecOutput_KeepsStderrOutOfDump(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	outW := stdcopy.NewStdWriter(&stream, stdcopy.Stdout)
	errW := stdcopy.NewStdWriter(&stream, stdcopy.Stderr)
	if _, err := outW.Write([]byte(`{"main":`)); err != nil {
		t.Fatal(err)
	}
	if _, err := errW.Write([]byte("tlmgr: package repository unreachable\n")); err != nil {
		t.Fatal(err)
	}
	if _, err := outW.Write([]byte(`{"tlpkgs":[{"name":"kpathsea"}]}}`)); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := demuxExecOutput(&stream)
	if err != nil {
		t.Fatalf("demuxExecOutput() error: %v", err)
	}
	db, err := DecodeDatabase(stdout)
	if err != nil {
		t.Fatalf("stdout should decode cleanly: %v (%q)", err, stdout)
	}
	if db.Main == nil || len(db.Main.Packages) != 1 {
		t.Errorf("unexpected database: %+v", db.Main)
	}
	if !strings.Contains(string(stderr), "unreachable") {
		t.Errorf("stderr = %q", stderr)
	}
}

// checkTestcontainersAvailable reports whether a container provider can be
// reached. The provider lookup can panic when no daemon socket exists.
func checkTestcontainersAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

func TestClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !checkTestcontainersAvailable() {
		t.Skip("skipping integration test: testcontainers provider not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: texliveImage,
			Cmd:   []string{"sleep", "infinity"},
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skipping integration test: cannot start %s: %v", texliveImage, err)
	}
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	client := NewClient(containerRunner{c: ctr}, DefaultTools())

	dist, err := client.TexmfDist(ctx)
	if err != nil {
		t.Fatalf("TexmfDist() error: %v", err)
	}
	if !strings.HasSuffix(dist, "texmf-dist") {
		t.Errorf("TexmfDist() = %q, want a texmf-dist directory", dist)
	}

	db, err := client.Database(ctx)
	if err != nil {
		t.Fatalf("Database() error: %v", err)
	}
	idx, err := BuildIndex(db)
	if err != nil {
		t.Fatalf("BuildIndex() error: %v", err)
	}
	if _, ok := idx.Depends["kpathsea"]; !ok {
		t.Error("expected kpathsea in the installed package database")
	}
}
