package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/sessions"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrCommandArgs    = errors.New("invalid number of arguments")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"u": 0,
	"r": 0,
	"d": 0,
	"l": 0,
	"n": 0, // regenerate
	"g": 0, // get
	"t": 0, // text render
}

type command struct {
	name string
	args []string
}

func parseCommand(line string) (command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return command{}, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return command{}, ErrCommandArgs
	}
	return command{name: parts[0], args: parts[1:]}, nil
}

type wsConn struct {
	*websocket.Conn
	timeout time.Duration
}

func (c wsConn) writeJSON(v any) error {
	c.SetWriteDeadline(time.Now().Add(c.timeout))
	return c.WriteJSON(v)
}

func (c wsConn) writeText(s string) error {
	c.SetWriteDeadline(time.Now().Add(c.timeout))
	return c.WriteMessage(websocket.TextMessage, []byte(s))
}

// ConnectWS plays a session over a websocket. Every text message holds one
// command per line; the reply is the session state after the last command.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	id, ok := g.sessionId(w, r)
	if !ok {
		return
	}
	if _, err := g.store.Snapshot(id); err != nil {
		g.storeError(w, err)
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	c := wsConn{conn, g.ws.WriteTimeout}
	log := g.log.WithField("session_id", id)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		text := strings.TrimSpace(string(message))
		log.WithField("commands", text).Debug("ws message")

		dto, err := g.executeBatch(r, c, id, text)
		if errors.Is(err, sessions.ErrNotFound) {
			c.writeJSON(wrapError(err))
			return
		}
		if err != nil {
			if err := c.writeJSON(wrapError(err)); err != nil {
				log.WithError(err).Warn("websocket write failed")
				return
			}
			continue
		}
		if dto == nil {
			continue
		}
		if err := c.writeJSON(dto); err != nil {
			log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

// executeBatch stops at the first malformed command. It returns nil when
// the batch only asked for text renders, which are written directly.
func (g GameHandler) executeBatch(r *http.Request, c wsConn, id uuid.UUID, text string) (*GameSessionDTO, error) {
	var (
		state    sessions.State
		lastMove string
		wantJSON bool
	)
	for _, line := range byPiece(text, "\n") {
		cmd, err := parseCommand(line)
		if err != nil {
			return nil, err
		}
		switch cmd.name {
		case "u", "r", "d", "l":
			d, _ := maze.ParseDirection(cmd.name)
			var result maze.MoveResult
			state, result, err = g.move(r.Context(), id, d)
			lastMove = result.String()
			wantJSON = true
		case "n":
			state, err = g.store.Update(id, func(s *maze.Session) error {
				return s.Regenerate()
			})
			lastMove = ""
			wantJSON = true
		case "g":
			state, err = g.store.Snapshot(id)
			wantJSON = true
		case "t":
			state, err = g.store.Snapshot(id)
			if err == nil {
				err = c.writeText(state.Render())
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if !wantJSON {
		return nil, nil
	}
	dto := NewGameSessionDTO(state)
	dto.LastMove = lastMove
	return dto, nil
}
