package app

import "github.com/avolpe/nonogram-server/internal/handlers"

func (a *App) loadRoutes() {
	auth := handlers.NewAuthHandler(a.logger, a.db, a.cookies, a.jwt)
	puzzle := handlers.NewPuzzleHandler(a.logger, a.db, a.ws)

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	a.router.HandleFunc("POST /puzzles", puzzle.Create)
	a.router.HandleFunc("GET /puzzles", puzzle.List)
	a.router.HandleFunc("GET /puzzles/{id}", puzzle.Fetch)
	a.router.HandleFunc("POST /puzzles/{id}/solve", puzzle.Solve)
	a.router.HandleFunc("GET /puzzles/{id}/attempts", puzzle.Attempts)
	a.router.HandleFunc("GET /puzzles/{id}/watch", puzzle.Watch)
	a.router.HandleFunc("GET /highscores", puzzle.Fastest)
}
