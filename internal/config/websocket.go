package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader     websocket.Upgrader
	WriteTimeout time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	writeTimeout, err := lookupDuration("WS_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:     upgrader,
		WriteTimeout: writeTimeout,
	}

	return ws, nil
}
