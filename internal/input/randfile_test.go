package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRandFile_ParsesCountAndValues(t *testing.T) {
	path := writeFile(t, "rand.txt", "3\n3\n5\n2\n")
	rg, err := LoadRandFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rg.Len())
	assert.Equal(t, 4, rg.Next(5)) // 1+(3 mod 5)
}

func TestLoadRandFile_MissingFile(t *testing.T) {
	_, err := LoadRandFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadRandFile_BadCount(t *testing.T) {
	path := writeFile(t, "rand.txt", "not-a-number\n")
	_, err := LoadRandFile(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errBadCount)
}

func TestLoadRandFile_TruncatedBeforeDeclaredCount(t *testing.T) {
	path := writeFile(t, "rand.txt", "3\n1\n2\n")
	_, err := LoadRandFile(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errTruncated)
}

func TestLoadRandFile_ZeroDeclaredCountIsMalformed(t *testing.T) {
	path := writeFile(t, "rand.txt", "0\n")
	_, err := LoadRandFile(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errEmptyRandFile)
}
