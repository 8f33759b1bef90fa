package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SolveAttempt struct {
	SolveAttemptId int64
	PuzzleId       int64
	Solver         string
	Outcome        string
	Solution       []byte // gob-encoded nonogram.Grid, nil when unsolved
	SolutionsFound int
	DurationMs     float64
	CreatedAt      pgtype.Timestamptz
}

type CreateSolveAttemptParams struct {
	PuzzleId       int64
	Solver         string
	Outcome        string
	Solution       []byte
	SolutionsFound int
	DurationMs     float64
}

func (q *Queries) CreateSolveAttempt(
	ctx context.Context, params CreateSolveAttemptParams,
) (*SolveAttempt, error) {
	args := pgx.NamedArgs{
		"puzzle_id":       params.PuzzleId,
		"solver":          params.Solver,
		"outcome":         params.Outcome,
		"solutions_found": params.SolutionsFound,
		"duration_ms":     params.DurationMs,
	}
	if params.Solution != nil {
		args["solution"] = params.Solution
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_attempt (
			puzzle_id, solver, outcome, solution, solutions_found, duration_ms
		)
		VALUES (
			@puzzle_id, @solver, @outcome, @solution, @solutions_found, @duration_ms
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveAttempt])
}

func (q *Queries) ListSolveAttempts(
	ctx context.Context, puzzleId int64,
) ([]SolveAttempt, error) {
	rows, _ := q.db.Query(
		ctx,
		`SELECT * FROM solve_attempt
		WHERE puzzle_id = $1
		ORDER BY duration_ms;`,
		puzzleId,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolveAttempt])
}

type FastestSolve struct {
	SolveAttemptId int64   `json:"solve_attempt_id"`
	PuzzleId       int64   `json:"puzzle_id"`
	Name           string  `json:"name"`
	Solver         string  `json:"solver"`
	DurationMs     float64 `json:"duration_ms"`
}

type FastestSolveFilter struct {
	Solver   *string
	PuzzleId *int64
}

func (f FastestSolveFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Solver != nil {
		clauses = append(clauses, "solver = @solver")
		args["solver"] = *f.Solver
	}
	if f.PuzzleId != nil {
		clauses = append(clauses, "puzzle_id = @puzzleId")
		args["puzzleId"] = *f.PuzzleId
	}
	return strings.Join(clauses, " AND "), args
}

// FastestSolves lists successful attempts ordered by solve duration, the
// service's leaderboard.
func (q *Queries) FastestSolves(
	ctx context.Context, filter FastestSolveFilter,
) ([]FastestSolve, error) {
	query := `
	SELECT
		solve_attempt_id,
		puzzle_id,
		name,
		solver,
		duration_ms
	FROM solve_attempt
		JOIN puzzle USING (puzzle_id)
	WHERE outcome = 'solved'
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY duration_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[FastestSolve])
}
