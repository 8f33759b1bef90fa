package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/avolpe/nonogram-server/internal/nonogram"
	"github.com/avolpe/nonogram-server/internal/repository"
)

const watchSolveTimeout = 30 * time.Second

type watchEvent struct {
	Event      string        `json:"event"`
	Error      string        `json:"error,omitempty"`
	Solver     string        `json:"solver,omitempty"`
	Outcome    string        `json:"outcome,omitempty"`
	DurationMs float64       `json:"duration_ms,omitempty"`
	Counts     []int         `json:"counts,omitempty"`
	Solutions  []SolutionDTO `json:"solutions,omitempty"`
}

// lineCounts reports the closed-form number of line-solutions per row then
// per column, the signal the clue solver prunes on.
func lineCounts(p *nonogram.Puzzle) []int {
	counts := make([]int, 0, p.NumClues())
	for _, clue := range p.Rows {
		counts = append(counts, nonogram.Solutions(clue, p.Width()).Count())
	}
	for _, clue := range p.Cols {
		counts = append(counts, nonogram.Solutions(clue, p.Height()).Count())
	}
	return counts
}

func (h *PuzzleHandler) watchCommand(
	ctx context.Context, row *repository.Puzzle, puzzle *nonogram.Puzzle, command string,
) watchEvent {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return watchEvent{Event: "error", Error: "empty command"}
	}

	switch parts[0] {
	case "counts":
		return watchEvent{Event: "counts", Counts: lineCounts(puzzle)}

	case "render":
		attempts, err := h.repo.ListSolveAttempts(ctx, row.PuzzleId)
		if err != nil {
			h.logger.Error("unable to list solve attempts", "error", err)
			return watchEvent{Event: "error", Error: "unable to list solve attempts"}
		}
		for _, attempt := range attempts {
			if attempt.Solution == nil {
				continue
			}
			grid, err := nonogram.DecodeGrid(attempt.Solution)
			if err != nil {
				h.logger.Error("db returned invalid solve_attempt.solution", "error", err)
				continue
			}
			return watchEvent{
				Event:     "render",
				Solver:    attempt.Solver,
				Solutions: []SolutionDTO{NewSolutionDTO(grid)},
			}
		}
		return watchEvent{Event: "error", Error: "no recorded solution"}

	case "solve":
		if len(parts) != 2 {
			return watchEvent{Event: "error", Error: ErrBadSolver.Error()}
		}
		solver, err := newSolver(parts[1], puzzle)
		if err != nil {
			return watchEvent{Event: "error", Error: err.Error()}
		}

		solveCtx, cancel := context.WithTimeout(ctx, watchSolveTimeout)
		defer cancel()
		out := runSolve(solveCtx, solver, false)

		attempt := repository.CreateSolveAttemptParams{
			PuzzleId:       row.PuzzleId,
			Solver:         parts[1],
			Outcome:        outcomeOf(out.failure),
			SolutionsFound: len(out.grids),
			DurationMs:     float64(out.duration) / float64(time.Millisecond),
		}
		event := watchEvent{
			Event:      "solved",
			Solver:     parts[1],
			Outcome:    outcomeOf(out.failure),
			DurationMs: attempt.DurationMs,
		}
		for _, grid := range out.grids {
			event.Solutions = append(event.Solutions, NewSolutionDTO(grid))
		}
		if len(out.grids) > 0 {
			if solution, err := out.grids[0].Bytes(); err == nil {
				attempt.Solution = solution
			}
		}
		if _, err := h.repo.CreateSolveAttempt(ctx, attempt); err != nil {
			h.logger.Error("unable to record solve attempt", "error", err)
		}
		return event

	default:
		return watchEvent{Event: "error", Error: "unknown command"}
	}
}

// Watch upgrades to a websocket and answers text commands against one
// puzzle: "counts" for per-line solution counts, "solve <solver>" to run a
// solver and stream the result.
func (h *PuzzleHandler) Watch(w http.ResponseWriter, r *http.Request) {
	row, puzzle, ok := h.fetchPuzzle(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("abnormal ws break", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		command := strings.TrimSpace(string(message))
		h.logger.Debug("ws command", "command", command)

		event := h.watchCommand(r.Context(), row, puzzle, command)
		if err := c.WriteJSON(event); err != nil {
			h.logger.Error("unable to write json", "error", err)
			break
		}
	}
}
