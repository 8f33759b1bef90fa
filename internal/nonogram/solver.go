package nonogram

// SolveFailure distinguishes a proven non-existence from an inconclusive
// search. Unsolvable puzzles are an expected outcome, so failures are
// values returned by solvers, never errors.
type SolveFailure int8

const (
	// Solved is the zero value: the solver returned a grid.
	Solved SolveFailure = iota
	// DoesNotExist means the search proved that no grid satisfies the
	// puzzle. A wrong DoesNotExist is a solver bug.
	DoesNotExist
	// Incomplete means the search terminated without a result and without
	// a proof of non-existence. Both shipped solvers explore complete
	// spaces and never return it; callers that cut a solve short from the
	// outside may use it to record the inconclusive outcome.
	Incomplete
)

func (f SolveFailure) String() string {
	switch f {
	case Solved:
		return "solved"
	case DoesNotExist:
		return "no solution exists"
	case Incomplete:
		return "existence undetermined"
	default:
		return "unknown"
	}
}

// A Solver consumes a puzzle and produces a satisfying grid or a
// [SolveFailure]. Solvers are deterministic, side-effect-free with respect
// to the puzzle, and safe to run concurrently on separate grids.
type Solver interface {
	// Solve returns the first solution found, or nil and the failure.
	// When a grid is returned the failure is [Solved].
	Solve() (*Grid, SolveFailure)
	// SolveAll collects every solution found. The slice order follows the
	// solver's own traversal and carries no further guarantee.
	SolveAll() ([]*Grid, SolveFailure)
}
