package app

import (
	"github.com/vancomm/sudoku-server/internal/handlers"
)

func (a *App) loadRoutes() {
	solver := handlers.NewSolver(a.logger, a.db, a.ws)
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)

	a.router.HandleFunc("POST /solve", solver.Solve)
	a.router.HandleFunc("GET /solve", solver.List)
	a.router.HandleFunc("GET /solve/{id}", solver.Fetch)
	a.router.HandleFunc("/solve/{id}/watch", solver.Watch)

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
}
