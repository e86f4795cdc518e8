package websocketstream

import (
	"io"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
)

const anyOrigin = "*"

type Websocket interface {
	SetWriteDeadline(t time.Time) error
	NextWriter(messageType int) (io.WriteCloser, error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetPongHandler(h func(appData string) error)
	SetReadDeadline(t time.Time) error
	SetReadLimit(limit int64)
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

type Upgrader interface {
	Upgrade(w http.ResponseWriter, r *http.Request, responseHeader http.Header) (Websocket, error)
}

type upgraderImpl struct {
	upgrader *gorillaws.Upgrader
}

// NewUpgrader accepts connections from allowOrigins ("*" allows any).
// Requests without Origin come from non-browser clients, like the chat server, and are accepted.
func NewUpgrader(allowOrigins []string, secWsProtocol string) Upgrader {
	var subprotocols []string
	if secWsProtocol != "" {
		subprotocols = []string{secWsProtocol}
	}

	upgrader := &gorillaws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Subprotocols:    subprotocols,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			for _, ao := range allowOrigins {
				if ao == anyOrigin || origin == ao {
					return true
				}
			}

			return false
		},
	}
	return &upgraderImpl{
		upgrader: upgrader,
	}
}

func (u *upgraderImpl) Upgrade(w http.ResponseWriter, r *http.Request, responseHeader http.Header) (Websocket, error) {
	return u.upgrader.Upgrade(w, r, responseHeader)
}
