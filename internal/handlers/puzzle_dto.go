package handlers

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/avolpe/nonogram-server/internal/nonogram"
	"github.com/avolpe/nonogram-server/internal/repository"
)

// CluesDTO carries raw run-length lists, one inner list per line. The
// shape matches the puzzle definition files the CLI reads and writes.
type CluesDTO struct {
	Row [][]int `json:"row"`
	Col [][]int `json:"col"`
}

type CreatePuzzleDTO struct {
	Name  string   `json:"name"`
	Clues CluesDTO `json:"clues"`
}

type PuzzleDTO struct {
	PuzzleId int64    `json:"puzzle_id"`
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Clues    CluesDTO `json:"clues"`
}

func NewPuzzleDTO(row *repository.Puzzle, p *nonogram.Puzzle) PuzzleDTO {
	clues := CluesDTO{
		Row: make([][]int, len(p.Rows)),
		Col: make([][]int, len(p.Cols)),
	}
	for i, clue := range p.Rows {
		clues.Row[i] = []int(clue)
	}
	for i, clue := range p.Cols {
		clues.Col[i] = []int(clue)
	}
	return PuzzleDTO{
		PuzzleId: row.PuzzleId,
		Name:     row.Name,
		Width:    p.Width(),
		Height:   p.Height(),
		Clues:    clues,
	}
}

type ListPuzzlesDTO struct {
	Username *string `schema:"username"`
}

func decodeListPuzzles(src map[string][]string) (ListPuzzlesDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto ListPuzzlesDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type SolveOptionsDTO struct {
	Solver    string `schema:"solver"`
	Collect   bool   `schema:"collect"`
	TimeoutMs int    `schema:"timeout_ms"`
}

func decodeSolveOptions(src map[string][]string) (SolveOptionsDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dto := SolveOptionsDTO{
		Solver:    "clue",
		TimeoutMs: 30_000,
	}
	err := dec.Decode(&dto, src)
	return dto, err
}

var solverNames = []string{"clue", "exhaustive"}

var ErrBadSolver = fmt.Errorf(
	"solver must be one of '%s'", strings.Join(solverNames, "', '"),
)

func newSolver(name string, p *nonogram.Puzzle) (nonogram.Solver, error) {
	switch name {
	case "clue":
		return nonogram.NewClueSolver(p), nil
	case "exhaustive":
		return nonogram.NewExhaustiveSolver(p), nil
	default:
		return nil, ErrBadSolver
	}
}

type SolutionDTO struct {
	Cells    [][]bool `json:"cells"`
	Rendered string   `json:"rendered"`
}

func NewSolutionDTO(g *nonogram.Grid) SolutionDTO {
	cells := make([][]bool, g.Height())
	for r := range cells {
		cells[r] = g.Row(r)
	}
	return SolutionDTO{
		Cells:    cells,
		Rendered: g.String(),
	}
}

type SolveResultDTO struct {
	PuzzleId   int64         `json:"puzzle_id"`
	Solver     string        `json:"solver"`
	Outcome    string        `json:"outcome"`
	DurationMs float64       `json:"duration_ms"`
	Solutions  []SolutionDTO `json:"solutions"`
}

type SolveAttemptDTO struct {
	SolveAttemptId int64   `json:"solve_attempt_id"`
	Solver         string  `json:"solver"`
	Outcome        string  `json:"outcome"`
	SolutionsFound int     `json:"solutions_found"`
	DurationMs     float64 `json:"duration_ms"`
}

func NewSolveAttemptDTO(a repository.SolveAttempt) SolveAttemptDTO {
	return SolveAttemptDTO{
		SolveAttemptId: a.SolveAttemptId,
		Solver:         a.Solver,
		Outcome:        a.Outcome,
		SolutionsFound: a.SolutionsFound,
		DurationMs:     a.DurationMs,
	}
}
