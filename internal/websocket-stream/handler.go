package websocketstream

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	eventstream "github.com/zestagio/chat-relay/internal/services/event-stream"
)

const (
	writeTimeout = time.Second
	maxFrameSize = 16 << 10
)

type eventStream interface {
	Subscribe(ctx context.Context) (<-chan eventstream.Event, error)
	Publish(ctx context.Context, event eventstream.Event) error
}

//go:generate options-gen -out-filename=handler_options.gen.go -from-struct=Options
type Options struct {
	pingPeriod time.Duration `default:"3s" validate:"omitempty,min=100ms,max=30s"`

	logger       *zap.Logger     `option:"mandatory" validate:"required"`
	eventStream  eventStream     `option:"mandatory" validate:"required"`
	eventAdapter EventAdapter    `option:"mandatory" validate:"required"`
	eventDecoder EventDecoder    `option:"mandatory" validate:"required"`
	eventWriter  EventWriter     `option:"mandatory" validate:"required"`
	upgrader     Upgrader        `option:"mandatory" validate:"required"`
	shutdownCh   <-chan struct{} `option:"mandatory" validate:"required"`
}

// HTTPHandler serves relay hub connections. Every text frame received from a connection
// is published to the stream, every stream event is written to all connections.
type HTTPHandler struct {
	Options
}

func NewHTTPHandler(opts Options) (*HTTPHandler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	return &HTTPHandler{Options: opts}, nil
}

func (h *HTTPHandler) Serve(eCtx echo.Context) error {
	ws, err := h.upgrader.Upgrade(eCtx.Response(), eCtx.Request(), nil)
	if err != nil {
		return fmt.Errorf("upgrade ws: %v", err)
	}
	ws.SetReadLimit(maxFrameSize)

	closer := newWsCloser(h.logger, ws)
	defer closer.Close(websocket.CloseNormalClosure)

	ctx, cancel := context.WithCancel(eCtx.Request().Context())
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()

		pongDeadline := h.pingPeriod + (h.pingPeriod / 2)
		if err := ws.SetReadDeadline(time.Now().Add(pongDeadline)); err != nil {
			return fmt.Errorf("set deadline for read pong: %v", err)
		}
		ws.SetPongHandler(func(string) error {
			h.logger.Debug("pong")
			return ws.SetReadDeadline(time.Now().Add(pongDeadline))
		})

		return h.readLoop(ctx, ws)
	})

	eg.Go(func() error {
		defer cancel()

		events, err := h.eventStream.Subscribe(ctx)
		if err != nil {
			return fmt.Errorf("subscribe to events: %v", err)
		}
		return h.writeLoop(ctx, ws, events)
	})

	eg.Go(func() error {
		select {
		case <-h.shutdownCh:
			h.logger.Info("graceful shutdown websocket service")
			cancel()
			closer.Close(websocket.CloseNormalClosure)
		case <-ctx.Done():
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		// The connection is hijacked, the error can only be logged.
		h.logger.Warn("ws stopped", zap.Error(err))
	}
	return nil
}

// readLoop publishes incoming frames and keeps the read deadline moving via pongs.
func (h *HTTPHandler) readLoop(ctx context.Context, ws Websocket) error {
	for {
		msgType, data, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				return nil
			}
			return fmt.Errorf("read msg: %v", err)
		}

		if msgType != websocket.TextMessage {
			h.logger.Debug("skip non-text frame", zap.Int("type", msgType))
			continue
		}

		event, err := h.eventDecoder.Decode(data)
		if err != nil {
			h.logger.Warn("invalid frame dropped", zap.Error(err))
			continue
		}

		if err := h.eventStream.Publish(ctx, event); err != nil {
			h.logger.Warn("event dropped", zap.Error(err))
		}
	}
}

// writeLoop listen events and writes them into Websocket.
func (h *HTTPHandler) writeLoop(ctx context.Context, ws Websocket, events <-chan eventstream.Event) error {
	t := time.NewTicker(h.pingPeriod)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := h.writeEvent(ws, event); err != nil {
				return err
			}

		case <-t.C:
			if err := h.writePing(ws); err != nil {
				return err
			}
		}
	}
}

func (h *HTTPHandler) writeEvent(ws Websocket, event eventstream.Event) error {
	ae, err := h.eventAdapter.Adapt(event)
	if err != nil {
		return fmt.Errorf("adapt event for send: %v", err)
	}

	if err := ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("set write deadline: %v", err)
	}

	w, err := ws.NextWriter(websocket.TextMessage)
	if err != nil {
		return fmt.Errorf("get next writer: %v", err)
	}

	if err := h.eventWriter.Write(ae, w); err != nil {
		_ = w.Close()
		return fmt.Errorf("write event: %v", err)
	}
	return w.Close()
}

func (h *HTTPHandler) writePing(ws Websocket) error {
	if err := ws.SetWriteDeadline(time.Now().Add(h.pingPeriod)); err != nil {
		return fmt.Errorf("set write deadline: %v", err)
	}

	if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
		return fmt.Errorf("send ping msg: %v", err)
	}

	h.logger.Debug("ping")
	return nil
}
