package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolpe/nonogram-server/internal/nonogram"
)

func TestDecodeSolveOptionsDefaults(t *testing.T) {
	t.Parallel()

	dto, err := decodeSolveOptions(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, "clue", dto.Solver)
	assert.False(t, dto.Collect)
	assert.Equal(t, 30_000, dto.TimeoutMs)
}

func TestDecodeSolveOptions(t *testing.T) {
	t.Parallel()

	dto, err := decodeSolveOptions(url.Values{
		"solver":     {"exhaustive"},
		"collect":    {"true"},
		"timeout_ms": {"500"},
		"unrelated":  {"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, "exhaustive", dto.Solver)
	assert.True(t, dto.Collect)
	assert.Equal(t, 500, dto.TimeoutMs)
}

func TestNewSolver(t *testing.T) {
	t.Parallel()

	p, err := nonogram.NewPuzzle([][]int{{1}}, [][]int{{1}})
	require.NoError(t, err)

	for _, name := range solverNames {
		solver, err := newSolver(name, p)
		require.NoError(t, err)
		assert.NotNil(t, solver)
	}

	_, err = newSolver("brute", p)
	assert.ErrorIs(t, err, ErrBadSolver)
}

func TestOutcomeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OutcomeSolved, outcomeOf(nonogram.Solved))
	assert.Equal(t, OutcomeDoesNotExist, outcomeOf(nonogram.DoesNotExist))
	assert.Equal(t, OutcomeIncomplete, outcomeOf(nonogram.Incomplete))
}

func TestLineCounts(t *testing.T) {
	t.Parallel()

	p, err := nonogram.NewPuzzle(
		[][]int{{1}, {2}},
		[][]int{{1}, {2}},
	)
	require.NoError(t, err)

	// Two rows then two columns, each line of length 2.
	assert.Equal(t, []int{2, 1, 2, 1}, lineCounts(p))
}
