package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReference_ParsesProcessesVMAsAndInstructions(t *testing.T) {
	contents := "" +
		"# one process with two VMAs\n" +
		"1\n" +
		"2\n" +
		"0 3 0 0\n" +
		"10 20 1 0\n" +
		"c 0\n" +
		"r 0\n" +
		"w 10\n" +
		"e 0\n"
	path := writeFile(t, "ref.txt", contents)

	ref, err := LoadReference(path)
	require.NoError(t, err)
	require.Len(t, ref.Processes, 1)
	require.Len(t, ref.Processes[0].VMAs, 2)
	assert.Equal(t, 0, ref.Processes[0].VMAs[0].StartPage)
	assert.Equal(t, 3, ref.Processes[0].VMAs[0].EndPage)
	assert.False(t, ref.Processes[0].VMAs[0].WriteProtected)
	assert.True(t, ref.Processes[0].VMAs[1].WriteProtected)

	require.Len(t, ref.Instructions, 4)
	assert.Equal(t, byte('c'), ref.Instructions[0].Op)
	assert.Equal(t, 10, ref.Instructions[2].Value)
}

func TestLoadReference_OverlappingVMAsRejected(t *testing.T) {
	contents := "1\n2\n0 5 0 0\n3 10 0 0\n"
	path := writeFile(t, "ref.txt", contents)

	_, err := LoadReference(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errOverlappingVMA)
}

func TestLoadReference_BadOpcodeRejected(t *testing.T) {
	contents := "1\n0\nz 1\n"
	path := writeFile(t, "ref.txt", contents)

	_, err := LoadReference(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errBadOpcode)
}

func TestLoadReference_TruncatedVMATable(t *testing.T) {
	contents := "1\n2\n0 5 0 0\n"
	path := writeFile(t, "ref.txt", contents)

	_, err := LoadReference(path)
	var malformed *ErrMalformed
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, malformed, errTruncated)
}

func TestLoadReference_ZeroProcessesAndNoInstructions(t *testing.T) {
	path := writeFile(t, "ref.txt", "0\n")
	ref, err := LoadReference(path)
	require.NoError(t, err)
	assert.Empty(t, ref.Processes)
	assert.Empty(t, ref.Instructions)
}
