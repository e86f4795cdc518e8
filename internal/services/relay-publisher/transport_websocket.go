package relaypublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

const (
	websocketTransportName = "websocket"
	closeFrameTimeout      = time.Second
)

//go:generate options-gen -out-filename=transport_websocket_options.gen.go -from-struct=WebsocketOptions
type WebsocketOptions struct {
	url    string            `option:"mandatory" validate:"required,url"`
	dialer *websocket.Dialer `validate:"required"`
}

// WebsocketTransport opens a short-lived connection to the relay hub per message.
type WebsocketTransport struct {
	WebsocketOptions
}

func NewWebsocketTransport(opts WebsocketOptions) (*WebsocketTransport, error) {
	if opts.dialer == nil {
		opts.dialer = websocket.DefaultDialer
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	return &WebsocketTransport{WebsocketOptions: opts}, nil
}

func (t *WebsocketTransport) Name() string {
	return websocketTransportName
}

func (t *WebsocketTransport) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %v", err)
	}

	conn, resp, err := t.dialer.DialContext(ctx, t.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial %s: %v", t.url, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("set write deadline: %v", err)
		}
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write message: %v", err)
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(closeFrameTimeout)); err != nil {
		return fmt.Errorf("write close frame: %v", err)
	}
	return nil
}

func (t *WebsocketTransport) Close() error {
	return nil
}
