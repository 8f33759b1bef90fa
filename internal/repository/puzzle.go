package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Puzzle struct {
	PuzzleId  int64
	PlayerId  *int64
	Name      string
	Width     int
	Height    int
	Clues     []byte // gob-encoded nonogram.Puzzle
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type CreatePuzzleParams struct {
	PlayerId *int64
	Name     string
	Width    int
	Height   int
	Clues    []byte
}

func (q *Queries) CreatePuzzle(ctx context.Context, params CreatePuzzleParams) (*Puzzle, error) {
	args := pgx.NamedArgs{
		"name":   params.Name,
		"width":  params.Width,
		"height": params.Height,
		"clues":  params.Clues,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle (player_id, name, width, height, clues)
		VALUES (@player_id, @name, @width, @height, @clues)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) FetchPuzzle(ctx context.Context, puzzleId int64) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM puzzle WHERE puzzle_id = $1", puzzleId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

type PuzzleSummary struct {
	PuzzleId int64   `json:"puzzle_id"`
	Username *string `json:"username"`
	Name     string  `json:"name"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

type PuzzleFilter struct {
	Username *string
}

func (f PuzzleFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListPuzzles(
	ctx context.Context, filter PuzzleFilter,
) ([]PuzzleSummary, error) {
	query := `
	SELECT
		puzzle_id,
		username,
		name,
		width,
		height
	FROM puzzle
		LEFT OUTER JOIN player USING (player_id)
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY puzzle_id;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[PuzzleSummary])
}
