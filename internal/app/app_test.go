package app

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/repository"
)

type nopRepo struct{}

func (nopRepo) CreatePlayer(context.Context, repository.CreatePlayerParams) (*repository.Player, error) {
	return &repository.Player{PlayerId: 1}, nil
}

func (nopRepo) FetchPlayer(context.Context, string) (*repository.Player, error) {
	return nil, context.Canceled
}

func (nopRepo) CreateRun(context.Context, repository.CreateRunParams) (*repository.Run, error) {
	return &repository.Run{}, nil
}

func (nopRepo) GetHighscores(context.Context, repository.HighscoreFilter) ([]repository.Highscore, error) {
	return nil, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	log, _ := test.NewNullLogger()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	a := New(log, nil)
	a.jwt = config.NewJWTWithKey(key)
	a.cookies = config.NewCookiesWith(a.jwt, "", false, http.SameSiteLaxMode)
	a.ws = &config.WebSocket{WriteTimeout: time.Second}
	a.maxDimension = 50
	a.players, a.runs, a.scores = nopRepo{}, nopRepo{}, nopRepo{}
	return a
}

func TestRoutes(t *testing.T) {
	t.Setenv("APP_BASE_PATH", "")
	h := newTestApp(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/game?width=51&height=3", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/game?width=5&height=3", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	var game map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &game))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/game/"+game["session_id"].(string), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/highscores", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/game", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutesBasePath(t *testing.T) {
	t.Setenv("APP_BASE_PATH", "/api/")
	h := newTestApp(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Minute, sweepInterval(30*time.Minute))
	assert.Equal(t, 15*time.Second, sweepInterval(time.Minute))
	assert.Equal(t, time.Second, sweepInterval(time.Second))
}
