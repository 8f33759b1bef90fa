package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPuzzle(t *testing.T, rows, cols [][]int) *Puzzle {
	t.Helper()
	p, err := NewPuzzle(rows, cols)
	require.NoError(t, err)
	return p
}

func TestNewPuzzleDimensions(t *testing.T) {
	p := mustPuzzle(t,
		[][]int{{1}, {2}, {1, 1}},
		[][]int{{2}, {1}, {1}, {2}},
	)
	assert.Equal(t, 3, p.Height())
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, 7, p.NumClues())
}

func TestNewPuzzleRejectsNegativeRuns(t *testing.T) {
	_, err := NewPuzzle([][]int{{1, -2}}, [][]int{{1}})
	assert.ErrorIs(t, err, ErrNegativeRun)

	_, err = NewPuzzle([][]int{{1}}, [][]int{{-1}})
	assert.ErrorIs(t, err, ErrNegativeRun)
}

func TestNewPuzzleTrimsEmptyOuterClues(t *testing.T) {
	// A leading all-empty row clue and a trailing all-empty column clue
	// normalize away; inner empty clues stay.
	padded := mustPuzzle(t,
		[][]int{{}, {1}, {}, {2}},
		[][]int{{1, 1}, {0}, {}},
	)
	bare := mustPuzzle(t,
		[][]int{{1}, {}, {2}},
		[][]int{{1, 1}},
	)
	assert.Equal(t, bare.Rows, padded.Rows)
	assert.Equal(t, bare.Cols, padded.Cols)
	assert.Equal(t, 3, padded.Height())
	assert.Equal(t, 1, padded.Width())
}

func TestPuzzleSatisfiedCount(t *testing.T) {
	// 2x2 "diagonal" puzzle: rows (1)(1), cols (1)(1), solved by either
	// diagonal.
	p := mustPuzzle(t, [][]int{{1}, {1}}, [][]int{{1}, {1}})

	g := NewGridWithData(2, 2, [][]bool{
		{true, false},
		{false, true},
	})
	count, err := p.SatisfiedCount(g)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	ok, err := p.SatisfiedBy(g)
	require.NoError(t, err)
	assert.True(t, ok)

	// Fill one extra cell: the first row and the second column break.
	g.Set(0, 1, true)
	count, err = p.SatisfiedCount(g)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	ok, err = p.SatisfiedBy(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPuzzleSatisfiedByIffAllCluesCount(t *testing.T) {
	p := mustPuzzle(t, [][]int{{2}, {1}}, [][]int{{1}, {2}})

	for pattern := 0; pattern < 16; pattern++ {
		g := NewGrid(2, 2)
		for i := 0; i < 4; i++ {
			g.Set(i/2, i%2, pattern&(1<<i) != 0)
		}
		count, err := p.SatisfiedCount(g)
		require.NoError(t, err)
		ok, err := p.SatisfiedBy(g)
		require.NoError(t, err)
		assert.Equal(t, count == p.NumClues(), ok)
	}
}

func TestPuzzleDimensionMismatch(t *testing.T) {
	p := mustPuzzle(t, [][]int{{1}}, [][]int{{1}})

	_, err := p.SatisfiedCount(NewGrid(2, 1))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = p.SatisfiedBy(NewGrid(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPuzzleBytesRoundTrip(t *testing.T) {
	p := mustPuzzle(t, [][]int{{1, 2}, {3}}, [][]int{{1}, {1}, {2}})

	buf, err := p.Bytes()
	require.NoError(t, err)

	decoded, err := DecodePuzzle(buf)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}
