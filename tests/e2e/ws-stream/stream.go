package wsstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"go.uber.org/multierr"
)

//go:generate options-gen -out-filename=stream_options.gen.go -from-struct=Options
type Options struct {
	endpoint     string                                       `option:"mandatory" validate:"required,url"`
	origin       string                                       `option:"mandatory" validate:"required"`
	eventHandler func(ctx context.Context, data []byte) error `option:"mandatory" validate:"required"`
}

// Stream is a live page stand-in: it listens to the relay hub and hands every frame to eventHandler.
type Stream struct {
	Options
	dialer       *gorillaws.Dialer
	eventSignals chan struct{}
	connected    chan struct{}
}

func New(opts Options) (*Stream, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	return &Stream{
		Options:      opts,
		dialer:       gorillaws.DefaultDialer,
		eventSignals: make(chan struct{}, 1000),
		connected:    make(chan struct{}),
	}, nil
}

func (s *Stream) Run(ctx context.Context) (errReturned error) {
	conn, resp, err := s.dialer.DialContext(ctx, s.endpoint, http.Header{
		"Origin": []string{s.origin},
	})
	if err != nil {
		return fmt.Errorf("dial: %v", err)
	}
	_ = resp.Body.Close()
	close(s.connected)

	defer multierr.AppendInvoke(&errReturned, multierr.Close(conn))
	conn.SetPingHandler(nil) // Default handler.

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(
			gorillaws.CloseMessage,
			gorillaws.FormatCloseMessage(gorillaws.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
	}()

	for {
		_, event, err := conn.ReadMessage()
		if err != nil {
			if gorillaws.IsCloseError(err, gorillaws.CloseNormalClosure) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read message: %v", err)
		}

		if err := s.eventHandler(ctx, event); err != nil {
			return fmt.Errorf("handle new event: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case s.eventSignals <- struct{}{}:
		}
	}
}

// Connected is closed once the hub accepted the connection.
func (s *Stream) Connected() <-chan struct{} {
	return s.connected
}

func (s *Stream) EventSignals() <-chan struct{} {
	return s.eventSignals
}
