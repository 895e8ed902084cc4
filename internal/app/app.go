package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/database"
	"github.com/vancomm/maze-server/internal/handlers"
	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/repository"
	"github.com/vancomm/maze-server/internal/sessions"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	log        *logrus.Logger
	router     *http.ServeMux
	migrations fs.FS

	db      *pgxpool.Pool
	store   *sessions.Store
	cookies *config.Cookies
	jwt     *config.JWT
	ws      *config.WebSocket

	players handlers.PlayerStore
	runs    handlers.RunRecorder
	scores  handlers.HighscoreStore

	maxDimension   int
	sessionMaxIdle time.Duration
}

func New(log *logrus.Logger, migrations fs.FS) *App {
	return &App{
		log:        log,
		router:     http.NewServeMux(),
		migrations: migrations,
		store:      sessions.NewStore(),
	}
}

func (a *App) loadConfig() (err error) {
	if a.jwt, err = config.NewJWT(); err != nil {
		return fmt.Errorf("failed to read jwt config: %w", err)
	}
	if a.cookies, err = config.NewCookies(a.jwt); err != nil {
		return fmt.Errorf("failed to read cookies config: %w", err)
	}
	if a.ws, err = config.NewWebSocket(); err != nil {
		return fmt.Errorf("failed to read ws config: %w", err)
	}
	if a.maxDimension, err = config.MaxDimension(); err != nil {
		return err
	}
	if a.sessionMaxIdle, err = config.SessionMaxIdle(); err != nil {
		return err
	}
	return nil
}

// sweepInterval keeps eviction within a quarter of maxIdle of the deadline.
func sweepInterval(maxIdle time.Duration) time.Duration {
	return min(max(maxIdle/4, time.Second), time.Minute)
}

// Start serves until ctx is cancelled or the server fails.
func (a *App) Start(ctx context.Context) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	db, _, err := database.ConnectAndMigrate(ctx, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()
	a.db = db

	repo := repository.New(db)
	a.players, a.runs, a.scores = repo, repo, repo

	maze.Log = a.log
	sessions.Log = a.log

	addr := config.Port()
	server := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.WithFields(logrus.Fields{
		"addr":          addr,
		"base_path":     config.BasePath(),
		"max_dimension": a.maxDimension,
		"max_idle":      a.sessionMaxIdle,
	}).Info("maze server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to listen and serve: %w", err)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		return a.store.Run(gCtx, sweepInterval(a.sessionMaxIdle), a.sessionMaxIdle)
	})

	return g.Wait()
}
