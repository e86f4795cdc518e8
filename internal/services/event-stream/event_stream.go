package eventstream

import (
	"context"
	"errors"
	"io"
)

var ErrStreamClosed = errors.New("event stream is closed")

type EventStream interface {
	io.Closer
	Subscribe(ctx context.Context) (<-chan Event, error)
	Publish(ctx context.Context, event Event) error
}
