package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/middleware"
	"github.com/vancomm/maze-server/internal/repository"
)

type PlayerStore interface {
	CreatePlayer(ctx context.Context, params repository.CreatePlayerParams) (*repository.Player, error)
	FetchPlayer(ctx context.Context, username string) (*repository.Player, error)
}

type Auth struct {
	log     logrus.FieldLogger
	players PlayerStore
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuth(
	log logrus.FieldLogger,
	players PlayerStore,
	cookies *config.Cookies,
	jwt *config.JWT,
) *Auth {
	return &Auth{
		log:     log,
		players: players,
		cookies: cookies,
		jwt:     jwt,
	}
}

type PlayerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type Status struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

var (
	ErrBadAuthBody        = errors.New("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = errors.New("password too long")
	ErrUsernameTaken      = errors.New("username taken")
	ErrBadCredentials     = errors.New("wrong username or password")
)

// bcrypt ignores everything past 72 bytes
const maxPasswordBytes = 72

func (a Auth) credentials(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	if err := r.ParseForm(); err != nil {
		sendError(w, a.log, http.StatusBadRequest, ErrBadAuthBody)
		return "", "", false
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		sendError(w, a.log, http.StatusBadRequest, ErrBadAuthBody)
		return "", "", false
	}
	if len(password) > maxPasswordBytes {
		sendError(w, a.log, http.StatusBadRequest, ErrBadPasswordTooLong)
		return "", "", false
	}
	return username, password, true
}

func (a Auth) signIn(w http.ResponseWriter, player *repository.Player) {
	token, err := a.jwt.SignPlayer(config.NewPlayerClaims(player.PlayerId, player.Username))
	if err != nil {
		internalError(w, a.log, "unable to create a jwt token", err)
		return
	}
	if err := a.cookies.Refresh(w, token); err != nil {
		internalError(w, a.log, "failed to set auth cookies", err)
		return
	}
	sendJSONOrLog(w, a.log, &Status{
		LoggedIn: true,
		Player:   &PlayerInfo{player.PlayerId, player.Username},
	})
}

func (a Auth) Register(w http.ResponseWriter, r *http.Request) {
	username, password, ok := a.credentials(w, r)
	if !ok {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		internalError(w, a.log, "unable to hash password", err)
		return
	}

	player, err := a.players.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		sendError(w, a.log, http.StatusConflict, ErrUsernameTaken)
		return
	}
	if err != nil {
		internalError(w, a.log, "unable to insert player", err)
		return
	}

	a.log.WithField("username", username).Info("player registered")
	a.signIn(w, player)
}

func (a Auth) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := a.credentials(w, r)
	if !ok {
		return
	}

	player, err := a.players.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		sendError(w, a.log, http.StatusUnauthorized, ErrBadCredentials)
		return
	}
	if err != nil {
		internalError(w, a.log, "could not fetch player from db", err)
		return
	}

	err = bcrypt.CompareHashAndPassword(player.PasswordHash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		sendError(w, a.log, http.StatusUnauthorized, ErrBadCredentials)
		return
	}
	if err != nil {
		internalError(w, a.log, "bcrypt compare error", err)
		return
	}

	a.signIn(w, player)
}

func (a Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (a Auth) Status(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r)
	if !ok {
		a.cookies.Clear(w)
		sendJSONOrLog(w, a.log, &Status{LoggedIn: false})
		return
	}

	a.log.WithField("player_id", claims.PlayerId).Debug("refresh cookies")
	token, err := a.jwt.SignPlayer(config.NewPlayerClaims(claims.PlayerId, claims.Username))
	if err != nil {
		internalError(w, a.log, "unable to tokenize checked claim", err)
		return
	}
	if err := a.cookies.Refresh(w, token); err != nil {
		internalError(w, a.log, "failed to set auth cookies", err)
		return
	}
	sendJSONOrLog(w, a.log, &Status{
		LoggedIn: true,
		Player:   &PlayerInfo{claims.PlayerId, claims.Username},
	})
}
