package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/samuelfneumann/gymspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output
func execute(t *testing.T, args ...string) ([]string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := GetRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return strings.Split(strings.TrimSpace(out.String()), "\n"), err
}

func TestDiscreteCommand(t *testing.T) {
	lines, err := execute(t, "discrete", "--n", "8", "--start", "2",
		"--seed", "1", "--samples", "5", "--contains", "9", "-c", "10")
	require.NoError(t, err)
	require.Len(t, lines, 8)

	assert.Equal(t, "Discrete(n: 8, start: 2, end: 10, dtype: int64)", lines[0])
	for _, line := range lines[1:6] {
		v, err := strconv.Atoi(line)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 2)
		assert.Less(t, v, 10)
	}
	assert.Equal(t, "contains 9: true", lines[6])
	assert.Equal(t, "contains 10: false", lines[7])
}

func TestSeedIsReproducible(t *testing.T) {
	first, err := execute(t, "box", "--low=-1", "--high=1", "--shape", "2,3",
		"--seed", "4", "--samples", "3")
	require.NoError(t, err)
	second, err := execute(t, "box", "--low=-1", "--high=1", "--shape", "2,3",
		"--seed", "4", "--samples", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestBoxCommand(t *testing.T) {
	lines, err := execute(t, "box", "--low=0,-Inf", "--high=1,5",
		"--samples", "0", "-c", "0.5,-100", "-c", "[2, 0]")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Box::BoxIndependent(shape: (2,), low: [0 -Inf], high: [1 5], dtype: float64)",
		"contains 0.5,-100: true",
		"contains [2, 0]: false",
	}, lines)

	_, err = execute(t, "box", "--low=0,0", "--high=1")
	assert.Error(t, err)

	_, err = execute(t, "box", "--low=0", "--high=1", "-c", "a")
	assert.Error(t, err)
}

func TestMultiCommands(t *testing.T) {
	lines, err := execute(t, "multi-discrete", "--n", "3,4", "--start=-1,0",
		"--samples", "0", "-c", "1,3", "-c", "2,3")
	require.NoError(t, err)
	assert.Equal(t, []string{"contains 1,3: true", "contains 2,3: false"},
		lines[1:])

	lines, err = execute(t, "multi-binary", "--shape", "2", "--samples", "1",
		"-c", "true,false", "-c", "1,0,1")
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, "contains true,false: true", lines[2])
	assert.Equal(t, "contains 1,0,1: false", lines[3])
}

func TestTextCommand(t *testing.T) {
	lines, err := execute(t, "text", "--min-len", "3", "--max-len", "5",
		"--samples", "20", "-c", "ab", "-c", "abc")
	require.NoError(t, err)
	require.Len(t, lines, 23)

	space, err := gymspace.NewText(3, 5)
	require.NoError(t, err)
	for _, line := range lines[1:21] {
		s, err := strconv.Unquote(line)
		require.NoError(t, err)
		assert.True(t, space.Contains(s))
	}
	assert.Equal(t, "contains ab: false", lines[21])
	assert.Equal(t, "contains abc: true", lines[22])
}

func TestInvalidSpace(t *testing.T) {
	_, err := execute(t, "discrete", "--n", "0")
	assert.ErrorIs(t, err, gymspace.ErrInvalidSpace)

	_, err = execute(t, "text", "--min-len", "4", "--max-len", "2")
	assert.ErrorIs(t, err, gymspace.ErrInvalidSpace)

	_, err = execute(t, "multi-discrete", "--n", "3,4", "--start", "0")
	assert.ErrorIs(t, err, gymspace.ErrInvalidSpace)
}
