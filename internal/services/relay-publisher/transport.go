package relaypublisher

import (
	"context"
	"io"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/transport_mock.gen.go -package=relaypublishermocks

// Transport is one way to deliver a message to the live channel.
type Transport interface {
	io.Closer

	Name() string

	// Send delivers the message once. Errors are logged by the caller and never retried.
	Send(ctx context.Context, msg Message) error
}
