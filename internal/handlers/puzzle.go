package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avolpe/nonogram-server/internal/config"
	"github.com/avolpe/nonogram-server/internal/middleware"
	"github.com/avolpe/nonogram-server/internal/nonogram"
	"github.com/avolpe/nonogram-server/internal/repository"
)

// Attempt outcomes as stored in solve_attempt.outcome.
const (
	OutcomeSolved       = "solved"
	OutcomeDoesNotExist = "does_not_exist"
	OutcomeIncomplete   = "incomplete"
)

func outcomeOf(failure nonogram.SolveFailure) string {
	switch failure {
	case nonogram.Solved:
		return OutcomeSolved
	case nonogram.Incomplete:
		return OutcomeIncomplete
	default:
		return OutcomeDoesNotExist
	}
}

type PuzzleHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewPuzzleHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
) *PuzzleHandler {
	return &PuzzleHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
	}
}

func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreatePuzzleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	puzzle, err := nonogram.NewPuzzle(dto.Clues.Row, dto.Clues.Col)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	clues, err := puzzle.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to encode puzzle clues", "error", err)
		return
	}

	params := repository.CreatePuzzleParams{
		Name:   dto.Name,
		Width:  puzzle.Width(),
		Height: puzzle.Height(),
		Clues:  clues,
	}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		h.logger.Debug("creating player puzzle", "claims", claims)
		params.PlayerId = &claims.PlayerId
	}

	row, err := h.repo.CreatePuzzle(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create puzzle", "error", err)
		return
	}

	SendJSONOrLog(w, h.logger, NewPuzzleDTO(row, puzzle))
}

// fetchPuzzle loads and decodes one puzzle, writing the error response
// itself on failure.
func (h *PuzzleHandler) fetchPuzzle(
	w http.ResponseWriter, r *http.Request,
) (*repository.Puzzle, *nonogram.Puzzle, bool) {
	puzzleId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	row, err := h.repo.FetchPuzzle(r.Context(), puzzleId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch puzzle from db", "error", err)
		return nil, nil, false
	}

	puzzle, err := nonogram.DecodePuzzle(row.Clues)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid puzzle.clues", "error", err)
		return nil, nil, false
	}

	return row, puzzle, true
}

func (h *PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	row, puzzle, ok := h.fetchPuzzle(w, r)
	if !ok {
		return
	}
	SendJSONOrLog(w, h.logger, NewPuzzleDTO(row, puzzle))
}

func (h *PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeListPuzzles(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	puzzles, err := h.repo.ListPuzzles(r.Context(), repository.PuzzleFilter{
		Username: dto.Username,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list puzzles", "error", err)
		return
	}

	SendJSONOrLog(w, h.logger, puzzles)
}

type solveOutcome struct {
	grids    []*nonogram.Grid
	failure  nonogram.SolveFailure
	duration time.Duration
}

// runSolve executes the solver on its own goroutine and waits for either
// the result or the context. The core has no cancellation mechanism, so a
// timed-out solve is abandoned, its late result ignored, and the outcome
// reported as incomplete.
func runSolve(
	ctx context.Context, solver nonogram.Solver, collect bool,
) solveOutcome {
	results := make(chan solveOutcome, 1)
	start := time.Now()

	go func() {
		var out solveOutcome
		if collect {
			out.grids, out.failure = solver.SolveAll()
		} else {
			var grid *nonogram.Grid
			grid, out.failure = solver.Solve()
			if grid != nil {
				out.grids = []*nonogram.Grid{grid}
			}
		}
		out.duration = time.Since(start)
		results <- out
	}()

	select {
	case out := <-results:
		return out
	case <-ctx.Done():
		return solveOutcome{
			failure:  nonogram.Incomplete,
			duration: time.Since(start),
		}
	}
}

func (h *PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	row, puzzle, ok := h.fetchPuzzle(w, r)
	if !ok {
		return
	}

	dto, err := decodeSolveOptions(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	solver, err := newSolver(dto.Solver, puzzle)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(
		r.Context(), time.Duration(dto.TimeoutMs)*time.Millisecond,
	)
	defer cancel()

	out := runSolve(ctx, solver, dto.Collect)

	attempt := repository.CreateSolveAttemptParams{
		PuzzleId:       row.PuzzleId,
		Solver:         dto.Solver,
		Outcome:        outcomeOf(out.failure),
		SolutionsFound: len(out.grids),
		DurationMs:     float64(out.duration) / float64(time.Millisecond),
	}
	if len(out.grids) > 0 {
		solution, err := out.grids[0].Bytes()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			h.logger.Error("unable to encode solution grid", "error", err)
			return
		}
		attempt.Solution = solution
	}

	// The attempt is recorded on the request context, which may already be
	// past its solve deadline; fall back so the record is not lost.
	recordCtx := r.Context()
	if recordCtx.Err() != nil {
		var recordCancel context.CancelFunc
		recordCtx, recordCancel = context.WithTimeout(
			context.Background(), 5*time.Second,
		)
		defer recordCancel()
	}
	if _, err := h.repo.CreateSolveAttempt(recordCtx, attempt); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to record solve attempt", "error", err)
		return
	}

	result := SolveResultDTO{
		PuzzleId:   row.PuzzleId,
		Solver:     dto.Solver,
		Outcome:    outcomeOf(out.failure),
		DurationMs: float64(out.duration) / float64(time.Millisecond),
		Solutions:  make([]SolutionDTO, 0, len(out.grids)),
	}
	for _, grid := range out.grids {
		result.Solutions = append(result.Solutions, NewSolutionDTO(grid))
	}

	SendJSONOrLog(w, h.logger, result)
}

func (h *PuzzleHandler) Attempts(w http.ResponseWriter, r *http.Request) {
	row, _, ok := h.fetchPuzzle(w, r)
	if !ok {
		return
	}

	attempts, err := h.repo.ListSolveAttempts(r.Context(), row.PuzzleId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list solve attempts", "error", err)
		return
	}

	dtos := make([]SolveAttemptDTO, 0, len(attempts))
	for _, attempt := range attempts {
		dtos = append(dtos, NewSolveAttemptDTO(attempt))
	}
	SendJSONOrLog(w, h.logger, dtos)
}

func (h *PuzzleHandler) Fastest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.FastestSolveFilter{}
	if solver := query.Get("solver"); solver != "" {
		filter.Solver = &solver
	}
	if idStr := query.Get("puzzle_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.PuzzleId = &id
	}

	fastest, err := h.repo.FastestSolves(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch fastest solves", "error", err)
		return
	}

	SendJSONOrLog(w, h.logger, fastest)
}
