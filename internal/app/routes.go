package app

import (
	"net/http"
	"strings"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/handlers"
	"github.com/vancomm/maze-server/internal/middleware"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.store, a.runs, a.ws, a.maxDimension)
	auth := handlers.NewAuth(a.log, a.players, a.cookies, a.jwt)
	highscores := handlers.NewHighscores(a.log, a.scores)

	a.router.HandleFunc("GET /healthz", handlers.Health)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("GET /game/{id}/render", game.Render)
	a.router.HandleFunc("POST /game/{id}/move", game.Move)
	a.router.HandleFunc("POST /game/{id}/regenerate", game.Regenerate)
	a.router.HandleFunc("DELETE /game/{id}", game.Delete)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET /highscores", highscores.Fetch)

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
	a.router.HandleFunc("GET /status", auth.Status)
}

func (a *App) Handler() http.Handler {
	a.loadRoutes()

	var h http.Handler = a.router
	if basePath := strings.TrimSuffix(config.BasePath(), "/"); basePath != "" {
		h = http.StripPrefix(basePath, h)
	}
	return middleware.Wrap(
		h,
		middleware.Auth(a.log, a.cookies),
		middleware.Cors(),
		middleware.Logging(a.log),
	)
}
