package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRun_EndToEndFIFO(t *testing.T) {
	refFile := writeFixture(t, "ref.txt", "1\n1\n0 3 0 0\nc 0\nr 0\nr 1\nr 2\n")
	randFile := writeFixture(t, "rand.txt", "1\n1\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-f2", "-af", "-oS", refFile, randFile}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "TOTALCOST")
}

func TestRun_UnknownAlgorithmReturnsReportableError(t *testing.T) {
	refFile := writeFixture(t, "ref.txt", "1\n1\n0 3 0 0\nc 0\nr 0\n")
	randFile := writeFixture(t, "rand.txt", "1\n1\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-f2", "-az", "-oS", refFile, randFile}, &stdout, &stderr)
	require.Error(t, err)
}

func TestRun_MissingReferenceFilePropagatesOSError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-f2", "-af", "/nonexistent/ref.txt", "/nonexistent/rand.txt"}, &stdout, &stderr)
	require.Error(t, err)
}
