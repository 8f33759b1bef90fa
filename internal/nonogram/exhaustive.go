package nonogram

// ExhaustiveSolver scans every possible grid of the puzzle's dimensions.
// Cost is O(2^(height*width)); it exists as an easily-verified reference,
// not a production solver. Because it searches the complete space, a
// non-find is a proof of non-existence and it never returns [Incomplete].
type ExhaustiveSolver struct {
	puzzle *Puzzle
}

func NewExhaustiveSolver(p *Puzzle) *ExhaustiveSolver {
	return &ExhaustiveSolver{puzzle: p}
}

// allLines enumerates every boolean line of the given length, low patterns
// first.
func allLines(length int) [][]bool {
	lines := make([][]bool, 0, 1<<length)
	for pattern := 0; pattern < 1<<length; pattern++ {
		line := make([]bool, length)
		for c := range line {
			line[c] = pattern&(1<<c) != 0
		}
		lines = append(lines, line)
	}
	return lines
}

// MaxSat scans the cartesian product of all boolean rows and returns the
// greatest number of clues any grid satisfies, together with every grid
// achieving it (or just the first when collect is false).
func (s *ExhaustiveSolver) MaxSat(collect bool) (int, []*Grid) {
	var (
		p     = s.puzzle
		lines = allLines(p.Width())
		// odometer over row patterns, one digit per row
		digits = make([]int, p.Height())
		grid   = NewGrid(p.Height(), p.Width())
		best   = -1
		found  []*Grid
	)

	for {
		for r, d := range digits {
			grid.SetRow(r, lines[d])
		}
		count, err := p.SatisfiedCount(grid)
		if err != nil {
			panic(err) // dimensions are ours; cannot mismatch
		}
		if count > best {
			best, found = count, found[:0]
		}
		if count == best && (collect || len(found) == 0) {
			found = append(found, grid.Copy())
		}

		r := len(digits) - 1
		for r >= 0 && digits[r] == len(lines)-1 {
			digits[r] = 0
			r--
		}
		if r < 0 {
			return best, found
		}
		digits[r]++
	}
}

func (s *ExhaustiveSolver) Solve() (*Grid, SolveFailure) {
	nsat, grids := s.MaxSat(false)
	if nsat == s.puzzle.NumClues() && len(grids) > 0 {
		return grids[0], Solved
	}
	return nil, DoesNotExist
}

func (s *ExhaustiveSolver) SolveAll() ([]*Grid, SolveFailure) {
	nsat, grids := s.MaxSat(true)
	if nsat == s.puzzle.NumClues() && len(grids) > 0 {
		return grids, Solved
	}
	return nil, DoesNotExist
}
