package nonogram

// ClueSolver builds candidate grids row by row from each row clue's
// [ClueSolutions] enumeration, then filters complete grids by the column
// clues. Every row filling consistent with its own clue is considered, so
// the searched space is guaranteed to contain a solution whenever one
// exists: like the exhaustive solver it never returns [Incomplete].
type ClueSolver struct {
	puzzle *Puzzle
}

func NewClueSolver(p *Puzzle) *ClueSolver {
	return &ClueSolver{puzzle: p}
}

// search runs the backtracking. When collect is false the recursion stops
// at the first column-satisfying grid via an early-return flag.
func (s *ClueSolver) search(collect bool) []*Grid {
	p := s.puzzle

	// A line with zero valid fillings makes the whole grid unsatisfiable,
	// so the search can be skipped entirely.
	for _, clue := range p.Rows {
		if Solutions(clue, p.Width()).Count() == 0 {
			return nil
		}
	}
	for _, clue := range p.Cols {
		if Solutions(clue, p.Height()).Count() == 0 {
			return nil
		}
	}

	var (
		grid  = NewGrid(p.Height(), p.Width())
		found []*Grid
	)

	// descend fills row r onward; it reports whether the search is done.
	var descend func(r int) bool
	descend = func(r int) bool {
		if r == p.Height() {
			// Row clues hold by construction; only columns need checking.
			for c, clue := range p.Cols {
				if !clue.SatisfiedBy(grid.Col(c)) {
					return false
				}
			}
			found = append(found, grid.Copy())
			return !collect
		}
		for line := range Solutions(p.Rows[r], p.Width()).All() {
			grid.SetRow(r, line)
			if descend(r + 1) {
				return true
			}
		}
		return false
	}
	descend(0)

	return found
}

func (s *ClueSolver) Solve() (*Grid, SolveFailure) {
	grids := s.search(false)
	if len(grids) == 0 {
		return nil, DoesNotExist
	}
	return grids[0], Solved
}

func (s *ClueSolver) SolveAll() ([]*Grid, SolveFailure) {
	grids := s.search(true)
	if len(grids) == 0 {
		return nil, DoesNotExist
	}
	return grids, Solved
}
