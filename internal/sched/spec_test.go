package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec_SimplePolicies(t *testing.T) {
	for letter, name := range map[string]string{"F": "FCFS", "L": "LCFS", "S": "SRTF"} {
		p, err := ParseSpec(letter)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
		assert.Equal(t, 0, p.Quantum())
	}
}

func TestParseSpec_RR(t *testing.T) {
	p, err := ParseSpec("R5")
	require.NoError(t, err)
	assert.Equal(t, "RR", p.Name())
	assert.Equal(t, 5, p.Quantum())
}

func TestParseSpec_PRIODefaultMaxPrio(t *testing.T) {
	p, err := ParseSpec("P2")
	require.NoError(t, err)
	assert.Equal(t, "PRIO", p.Name())
	assert.Equal(t, 2, p.Quantum())
	assert.Equal(t, DefaultMaxPrio, PolicyMaxPrio(p))
}

func TestParseSpec_PREPRIOWithMaxPrio(t *testing.T) {
	p, err := ParseSpec("E4:8")
	require.NoError(t, err)
	assert.Equal(t, "PREPRIO", p.Name())
	assert.Equal(t, 4, p.Quantum())
	assert.Equal(t, 8, PolicyMaxPrio(p))
}

func TestParseSpec_Invalid(t *testing.T) {
	cases := []string{"", "X", "R", "R0", "R-1", "P", "P2:0", "FF"}
	for _, c := range cases {
		_, err := ParseSpec(c)
		require.Error(t, err, "spec %q should be invalid", c)
		var invalid *ErrInvalidSpec
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, c, invalid.Value)
		assert.Equal(t, "Invalid scheduler specification: "+c+".", invalid.Error())
	}
}
