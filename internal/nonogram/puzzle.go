package nonogram

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

var ErrDimensionMismatch = errors.New("grid dimensions do not match puzzle")

// A Puzzle is the full clue set of one nonogram: an ordered sequence of row
// clues and an ordered sequence of column clues. The grid width equals the
// number of column clues and the height the number of row clues.
//
// Rows and Cols are exported for serialization; treat a built puzzle as
// read-only.
type Puzzle struct {
	Rows, Cols []Clue
}

// trimClues removes degenerate (empty) clues from both ends. Outer lines
// that are guaranteed blank carry no information, and dropping them up
// front spares the solvers from special-casing them.
func trimClues(clues []Clue) []Clue {
	start, end := 0, len(clues)
	for start < end && len(clues[start]) == 0 {
		start++
	}
	for end > start && len(clues[end-1]) == 0 {
		end--
	}
	return clues[start:end]
}

// NewPuzzle builds a puzzle from raw run-length lists, one inner list per
// row and per column. Zeros inside a list are ignored; negative runs fail
// with [ErrNegativeRun]. A puzzle never verifies its own solvability; that
// is the solver's job.
func NewPuzzle(rows, cols [][]int) (*Puzzle, error) {
	rowClues, err := newClues(rows)
	if err != nil {
		return nil, fmt.Errorf("row clues: %w", err)
	}
	colClues, err := newClues(cols)
	if err != nil {
		return nil, fmt.Errorf("col clues: %w", err)
	}
	return &Puzzle{
		Rows: trimClues(rowClues),
		Cols: trimClues(colClues),
	}, nil
}

func newClues(lists [][]int) ([]Clue, error) {
	clues := make([]Clue, len(lists))
	for i, runs := range lists {
		clue, err := NewClue(runs...)
		if err != nil {
			return nil, fmt.Errorf("clue %d: %w", i, err)
		}
		clues[i] = clue
	}
	return clues, nil
}

// Width is the number of cells in a row.
func (p *Puzzle) Width() int { return len(p.Cols) }

// Height is the number of cells in a column.
func (p *Puzzle) Height() int { return len(p.Rows) }

// NumClues is the total number of constraints a solution must satisfy.
func (p *Puzzle) NumClues() int { return len(p.Rows) + len(p.Cols) }

// SatisfiedCount reports how many of the puzzle's row and column clues the
// grid satisfies. Fails with [ErrDimensionMismatch] when the grid's
// dimensions differ from the puzzle's.
func (p *Puzzle) SatisfiedCount(g *Grid) (int, error) {
	if g.Height() != p.Height() || g.Width() != p.Width() {
		return 0, fmt.Errorf(
			"%w: grid is %dx%d, puzzle is %dx%d",
			ErrDimensionMismatch,
			g.Height(), g.Width(), p.Height(), p.Width(),
		)
	}
	count := 0
	for r, clue := range p.Rows {
		if clue.SatisfiedBy(g.Row(r)) {
			count++
		}
	}
	for c, clue := range p.Cols {
		if clue.SatisfiedBy(g.Col(c)) {
			count++
		}
	}
	return count, nil
}

// SatisfiedBy reports whether the grid satisfies every clue in the puzzle.
func (p *Puzzle) SatisfiedBy(g *Grid) (bool, error) {
	count, err := p.SatisfiedCount(g)
	if err != nil {
		return false, err
	}
	return count == p.NumClues(), nil
}

func DecodePuzzle(buf []byte) (*Puzzle, error) {
	var p Puzzle
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Puzzle) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(p)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
