package websocketstream_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hubevents "github.com/zestagio/chat-relay/internal/server-hub/events"
	websocketstream "github.com/zestagio/chat-relay/internal/websocket-stream"
)

func TestJSONEventWriter(t *testing.T) {
	wr := websocketstream.JSONEventWriter{}

	t.Run("frame", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		err := wr.Write(hubevents.Message{Username: "bob", Message: "hi"}, out)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": "00000000-0000-0000-0000-000000000000",
			"username": "bob",
			"message": "hi",
			"createdAt": "0001-01-01T00:00:00Z"
		}`, out.String())
	})

	t.Run("unsupported value", func(t *testing.T) {
		err := wr.Write(make(chan int), bytes.NewBuffer(nil))
		require.Error(t, err)
	})

	t.Run("broken writer", func(t *testing.T) {
		err := wr.Write(hubevents.Message{}, brokenWriter{})
		require.Error(t, err)
	})
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
