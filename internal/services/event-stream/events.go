package eventstream

import (
	"errors"
	"time"

	"github.com/zestagio/chat-relay/internal/types"
	"github.com/zestagio/chat-relay/internal/validator"
)

type Event interface {
	eventMarker()
	Validate() error
}

type event struct{}         //
func (*event) eventMarker() {}

// NewMessageEvent is a signal about a message accepted by the chat server.
type NewMessageEvent struct {
	event

	EventID   types.EventID
	MessageID types.MessageID
	Sender    string `validate:"required"`
	Body      string `validate:"required"`
	CreatedAt time.Time
}

func (e NewMessageEvent) Validate() error {
	return errors.Join(
		e.EventID.Validate(),
		validator.Validator.Struct(e),
	)
}

func NewNewMessageEvent(
	eventID types.EventID,
	msgID types.MessageID,
	sender string,
	body string,
	createdAt time.Time,
) *NewMessageEvent {
	return &NewMessageEvent{
		event:     event{},
		EventID:   eventID,
		MessageID: msgID,
		Sender:    sender,
		Body:      body,
		CreatedAt: createdAt,
	}
}
