package input

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProcesses_ParsesFourFieldLines(t *testing.T) {
	path := writeFile(t, "procs.txt", "0 100 10 10\n# a comment line\n5 50 5 5\n")
	specs, err := LoadProcesses(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, 0, specs[0].AT)
	assert.Equal(t, 100, specs[0].TC)
	assert.Equal(t, 10, specs[0].CB)
	assert.Equal(t, 10, specs[0].IO)
	assert.Equal(t, 5, specs[1].AT)
}

func TestLoadProcesses_SkipsBlankAndCommentLines(t *testing.T) {
	path := writeFile(t, "procs.txt", "\n  \n# header\n0 1 1 1\n")
	specs, err := LoadProcesses(path)
	require.NoError(t, err)
	require.Len(t, specs, 1)
}

func TestLoadProcesses_WrongFieldCount(t *testing.T) {
	path := writeFile(t, "procs.txt", "0 1 1\n")
	_, err := LoadProcesses(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errWrongFieldCnt)
	assert.Equal(t, 1, malformed.Line)
}

func TestLoadProcesses_NonIntegerField(t *testing.T) {
	path := writeFile(t, "procs.txt", "0 x 1 1\n")
	_, err := LoadProcesses(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errBadInt)
}

func TestLoadProcesses_EmptyFileIsMalformed(t *testing.T) {
	path := writeFile(t, "procs.txt", "# nothing but comments\n")
	_, err := LoadProcesses(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errTruncated)
}

func TestLoadProcesses_MissingFile(t *testing.T) {
	_, err := LoadProcesses(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
