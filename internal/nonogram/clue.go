// Package nonogram implements the constraint model and solving engine for
// nonogram puzzles: clues, grids, the combinatorial enumeration of all line
// fillings consistent with a clue, and two interchangeable solvers.
package nonogram

import "errors"

var ErrNegativeRun = errors.New("negative numbers are not valid clue runs")

// A Clue constrains one line (row or column) to an ordered sequence of
// maximal filled runs, each separated by at least one empty cell. The
// degenerate clue (all cells empty) is the empty slice; zero-length runs
// are never stored.
type Clue []int

// NewClue builds a clue from raw run lengths. Zeros are dropped, since a
// zero run is the same constraint as no run at all. Negative runs are
// rejected with [ErrNegativeRun].
func NewClue(runs ...int) (Clue, error) {
	clue := make(Clue, 0, len(runs))
	for _, run := range runs {
		if run < 0 {
			return nil, ErrNegativeRun
		}
		if run > 0 {
			clue = append(clue, run)
		}
	}
	return clue, nil
}

// Sum is the total number of filled cells the clue demands.
func (c Clue) Sum() (total int) {
	for _, run := range c {
		total += run
	}
	return
}

// SatisfiedBy reports whether the maximal filled runs of line, read left to
// right, equal the clue exactly in count and order. The line is treated as
// complete; a clue imposes no total length of its own, so the empty clue is
// satisfied by the all-empty line of any length.
func (c Clue) SatisfiedBy(line []bool) bool {
	next := 0 // index of the next expected run
	run := 0

	// One iteration past the end acts as a sentinel empty cell, closing a
	// run that touches the last cell.
	for i := 0; i <= len(line); i++ {
		if i < len(line) && line[i] {
			run++
			continue
		}
		if run == 0 {
			continue
		}
		if next == len(c) || c[next] != run {
			return false
		}
		next++
		run = 0
	}

	return next == len(c)
}
