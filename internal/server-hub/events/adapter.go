package hubevents

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zestagio/chat-relay/internal/sanitizer"
	eventstream "github.com/zestagio/chat-relay/internal/services/event-stream"
	"github.com/zestagio/chat-relay/internal/types"
	websocketstream "github.com/zestagio/chat-relay/internal/websocket-stream"
)

var (
	_ websocketstream.EventAdapter = Adapter{}
	_ websocketstream.EventDecoder = Adapter{}
)

// Message is the frame exchanged with the chat server and the live pages.
type Message struct {
	ID        types.MessageID `json:"id"`
	Username  string          `json:"username"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Adapter struct{}

func (Adapter) Adapt(sEvent eventstream.Event) (any, error) {
	switch v := sEvent.(type) {
	case *eventstream.NewMessageEvent:
		return Message{
			ID:        v.MessageID,
			Username:  v.Sender,
			Message:   v.Body,
			CreatedAt: v.CreatedAt,
		}, nil
	}
	return nil, fmt.Errorf("unknown hub event: %v (%T)", sEvent, sEvent)
}

// Decode accepts frames from any peer, so the text is sanitized once more.
// Frames from the chat server are already escaped and stay unchanged.
func (Adapter) Decode(data []byte) (eventstream.Event, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal frame: %v", err)
	}

	event := eventstream.NewNewMessageEvent(
		types.NewEventID(),
		m.ID,
		sanitizer.Sanitize(m.Username),
		sanitizer.Sanitize(m.Message),
		m.CreatedAt,
	)
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("validate frame: %v", err)
	}
	return event, nil
}
