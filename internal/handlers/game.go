package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/middleware"
	"github.com/vancomm/maze-server/internal/repository"
	"github.com/vancomm/maze-server/internal/sessions"
)

var (
	ErrBadSessionId = errors.New("invalid session id")
	ErrIllegalMove  = errors.New("you can't move that way")
	ErrFinished     = errors.New("maze already finished, regenerate to play again")
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	CreateRun(ctx context.Context, params repository.CreateRunParams) (*repository.Run, error)
}

type GameHandler struct {
	log          logrus.FieldLogger
	store        *sessions.Store
	runs         RunRecorder
	ws           *config.WebSocket
	maxDimension int
	now          func() time.Time
}

func NewGameHandler(
	log logrus.FieldLogger,
	store *sessions.Store,
	runs RunRecorder,
	ws *config.WebSocket,
	maxDimension int,
) *GameHandler {
	return &GameHandler{
		log:          log,
		store:        store,
		runs:         runs,
		ws:           ws,
		maxDimension: maxDimension,
		now:          time.Now,
	}
}

func (g GameHandler) sessionId(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		sendError(w, g.log, http.StatusBadRequest, ErrBadSessionId)
		return uuid.Nil, false
	}
	return id, true
}

func (g GameHandler) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, sessions.ErrNotFound) {
		sendError(w, g.log, http.StatusNotFound, err)
		return
	}
	internalError(w, g.log, "session update failed", err)
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query(), g.maxDimension)
	if err != nil {
		sendError(w, g.log, http.StatusBadRequest, err)
		return
	}

	var options []sessions.CreateOption
	if dto.Seed != nil {
		options = append(options, sessions.WithSeed(*dto.Seed))
	}
	state, err := g.store.Create(dto.Params(), options...)
	if errors.Is(err, maze.ErrInvalidDimensions) {
		sendError(w, g.log, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		internalError(w, g.log, "unable to generate a maze", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, g.log, NewGameSessionDTO(state))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id, ok := g.sessionId(w, r)
	if !ok {
		return
	}
	state, err := g.store.Snapshot(id)
	if err != nil {
		g.storeError(w, err)
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(state))
}

// move applies d to the session and records the run when it reaches the
// exit. Recording failures are logged and do not fail the move.
func (g GameHandler) move(ctx context.Context, id uuid.UUID, d maze.Direction) (sessions.State, maze.MoveResult, error) {
	var result maze.MoveResult
	state, err := g.store.Update(id, func(s *maze.Session) error {
		result = s.Move(d)
		return nil
	})
	if err != nil {
		return state, result, err
	}
	if result == maze.MoveFinished {
		g.recordRun(ctx, state)
	}
	return state, result, nil
}

func (g GameHandler) recordRun(ctx context.Context, state sessions.State) {
	log := g.log.WithFields(logrus.Fields{
		"session_id": state.ID,
		"width":      state.Width,
		"height":     state.Height,
		"moves":      state.Moves,
	})
	log.Info("maze finished")
	if g.runs == nil {
		return
	}

	params := repository.CreateRunParams{
		SessionId:     state.ID,
		Width:         state.Width,
		Height:        state.Height,
		Moves:         state.Moves,
		PathLength:    len(state.Path) - 1,
		OptimalLength: len(state.Grid().Solution()) - 1,
		StartedAt:     state.StartedAt,
		EndedAt:       g.now(),
	}
	if claims, ok := ctx.Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		params.PlayerId = &claims.PlayerId
	}
	if _, err := g.runs.CreateRun(ctx, params); err != nil {
		log.WithError(err).Error("unable to record finished run")
	}
}

func (g GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := g.sessionId(w, r)
	if !ok {
		return
	}
	d, err := ParseMove(r.URL.Query())
	if err != nil {
		sendError(w, g.log, http.StatusBadRequest, err)
		return
	}

	state, result, err := g.move(r.Context(), id, d)
	if err != nil {
		g.storeError(w, err)
		return
	}
	if result == maze.MoveIllegal {
		if state.Finished {
			sendError(w, g.log, http.StatusConflict, ErrFinished)
		} else {
			sendError(w, g.log, http.StatusConflict, ErrIllegalMove)
		}
		return
	}

	dto := NewGameSessionDTO(state)
	dto.LastMove = result.String()
	sendJSONOrLog(w, g.log, dto)
}

func (g GameHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := g.sessionId(w, r)
	if !ok {
		return
	}
	state, err := g.store.Update(id, func(s *maze.Session) error {
		return s.Regenerate()
	})
	if err != nil {
		g.storeError(w, err)
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(state))
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := g.sessionId(w, r)
	if !ok {
		return
	}
	if err := g.store.Delete(id); err != nil {
		g.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g GameHandler) Render(w http.ResponseWriter, r *http.Request) {
	id, ok := g.sessionId(w, r)
	if !ok {
		return
	}
	state, err := g.store.Snapshot(id)
	if err != nil {
		g.storeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(state.Render()))
}
