package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cluesOf derives the row and column run lists of a pattern, giving a
// puzzle with at least that one known solution.
func cluesOf(pattern [][]bool) (rows, cols [][]int) {
	height, width := len(pattern), 0
	if height > 0 {
		width = len(pattern[0])
	}
	runsOf := func(line []bool) []int {
		runs := []int{}
		run := 0
		for _, filled := range line {
			if filled {
				run++
			} else if run > 0 {
				runs = append(runs, run)
				run = 0
			}
		}
		if run > 0 {
			runs = append(runs, run)
		}
		return runs
	}
	for r := 0; r < height; r++ {
		rows = append(rows, runsOf(pattern[r]))
	}
	for c := 0; c < width; c++ {
		col := make([]bool, height)
		for r := 0; r < height; r++ {
			col[r] = pattern[r][c]
		}
		cols = append(cols, runsOf(col))
	}
	return rows, cols
}

var solverUnderTest = []struct {
	name string
	make func(*Puzzle) Solver
}{
	{"clue", func(p *Puzzle) Solver { return NewClueSolver(p) }},
	{"exhaustive", func(p *Puzzle) Solver { return NewExhaustiveSolver(p) }},
}

func TestSolversFindKnownSolution(t *testing.T) {
	patterns := []struct {
		name  string
		cells [][]bool
	}{
		{
			name: "cross 3x3",
			cells: [][]bool{
				{false, true, false},
				{true, true, true},
				{false, true, false},
			},
		},
		{
			name: "diagonal-ish 3x4",
			cells: [][]bool{
				{true, true, false, false},
				{false, true, true, false},
				{false, false, true, true},
			},
		},
		{
			name: "checker 2x3",
			cells: [][]bool{
				{true, false, true},
				{false, true, false},
			},
		},
	}

	for _, pattern := range patterns {
		rows, cols := cluesOf(pattern.cells)
		p := mustPuzzle(t, rows, cols)

		for _, s := range solverUnderTest {
			t.Run(pattern.name+"/"+s.name, func(t *testing.T) {
				grid, failure := s.make(p).Solve()
				require.Equal(t, Solved, failure)
				require.NotNil(t, grid)

				ok, err := p.SatisfiedBy(grid)
				require.NoError(t, err)
				assert.True(t, ok, "returned grid must satisfy the puzzle:\n%s", grid)
			})
		}
	}
}

func TestSolversProveNonExistence(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols [][]int
	}{
		{
			name: "row run wider than grid",
			rows: [][]int{{3}, {1}},
			cols: [][]int{{1}, {1}},
		},
		{
			name: "row and column totals disagree",
			rows: [][]int{{2}, {2}},
			cols: [][]int{{1}, {2}},
		},
		{
			name: "column demands more than rows allow",
			rows: [][]int{{1}, {1}},
			cols: [][]int{{2}, {2}},
		},
	}

	for _, test := range tests {
		p := mustPuzzle(t, test.rows, test.cols)
		for _, s := range solverUnderTest {
			t.Run(test.name+"/"+s.name, func(t *testing.T) {
				grid, failure := s.make(p).Solve()
				assert.Nil(t, grid)
				assert.Equal(t, DoesNotExist, failure)
			})
		}
	}
}

func TestSolversAgreeOnAllSolutions(t *testing.T) {
	// 2x2 with rows (1)(1) and cols (1)(1) has exactly the two diagonals.
	p := mustPuzzle(t, [][]int{{1}, {1}}, [][]int{{1}, {1}})

	collect := func(s Solver) map[string]bool {
		grids, failure := s.SolveAll()
		require.Equal(t, Solved, failure)
		set := make(map[string]bool)
		for _, g := range grids {
			set[g.String()] = true
		}
		return set
	}

	clue := collect(NewClueSolver(p))
	exhaustive := collect(NewExhaustiveSolver(p))

	assert.Len(t, clue, 2)
	assert.Equal(t, exhaustive, clue)
}

func TestSolversDifferential(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	// Every 3x3 puzzle derived from a pattern is solvable; both solvers
	// must agree and return satisfying grids.
	for pattern := 0; pattern < 1<<9; pattern++ {
		cells := make([][]bool, 3)
		for r := range cells {
			cells[r] = make([]bool, 3)
			for c := range cells[r] {
				cells[r][c] = pattern&(1<<(r*3+c)) != 0
			}
		}
		rows, cols := cluesOf(cells)
		p := mustPuzzle(t, rows, cols)

		clueGrid, clueFailure := NewClueSolver(p).Solve()
		exhGrid, exhFailure := NewExhaustiveSolver(p).Solve()

		require.Equal(t, Solved, clueFailure, "pattern %09b", pattern)
		require.Equal(t, Solved, exhFailure, "pattern %09b", pattern)

		for _, g := range []*Grid{clueGrid, exhGrid} {
			ok, err := p.SatisfiedBy(g)
			require.NoError(t, err)
			require.True(t, ok, "pattern %09b solved wrong:\n%s", pattern, g)
		}
	}
}

func TestClueSolverSkipsSearchOnZeroCountLine(t *testing.T) {
	// Width 2 cannot hold a run of 3: DoesNotExist without any search.
	p := mustPuzzle(t, [][]int{{3}}, [][]int{{1}, {1}})
	grid, failure := NewClueSolver(p).Solve()
	assert.Nil(t, grid)
	assert.Equal(t, DoesNotExist, failure)
}

func TestMaxSatOnUnsolvablePuzzle(t *testing.T) {
	// Row totals and column totals disagree, so no grid satisfies all
	// four clues; the full grid still satisfies three of them.
	p := mustPuzzle(t, [][]int{{2}, {2}}, [][]int{{1}, {2}})

	nsat, grids := NewExhaustiveSolver(p).MaxSat(false)
	require.Len(t, grids, 1)
	assert.Less(t, nsat, p.NumClues())
	assert.Greater(t, nsat, 0)

	count, err := p.SatisfiedCount(grids[0])
	require.NoError(t, err)
	assert.Equal(t, nsat, count)
}

func TestSolveFailureString(t *testing.T) {
	assert.Equal(t, "solved", Solved.String())
	assert.Equal(t, "no solution exists", DoesNotExist.String())
	assert.Equal(t, "existence undetermined", Incomplete.String())
}
