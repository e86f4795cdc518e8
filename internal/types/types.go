package types

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var errZeroID = errors.New("zero id")

type Types interface {
	MessageID | EventID
}

func Parse[T Types](s string) (T, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return T{UUID: id}, nil
}

func MustParse[T Types](s string) T {
	v, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// MessageID identifies an accepted chat message.
type MessageID struct {
	uuid.UUID
}

var MessageIDNil = MessageID{UUID: uuid.Nil}

func NewMessageID() MessageID {
	return MessageID{UUID: uuid.New()}
}

func (t MessageID) IsZero() bool {
	return t.UUID == uuid.Nil
}

func (t MessageID) Matches(x any) bool {
	v, ok := x.(MessageID)
	return ok && v == t
}

func (t MessageID) Validate() error {
	if t.IsZero() {
		return fmt.Errorf("message id: %w", errZeroID)
	}
	return nil
}

func (t MessageID) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *MessageID) Scan(src any) error {
	return scanUUID(&t.UUID, src)
}

// EventID identifies an event travelling through the relay hub.
type EventID struct {
	uuid.UUID
}

var EventIDNil = EventID{UUID: uuid.Nil}

func NewEventID() EventID {
	return EventID{UUID: uuid.New()}
}

func (t EventID) IsZero() bool {
	return t.UUID == uuid.Nil
}

func (t EventID) Matches(x any) bool {
	v, ok := x.(EventID)
	return ok && v == t
}

func (t EventID) Validate() error {
	if t.IsZero() {
		return fmt.Errorf("event id: %w", errZeroID)
	}
	return nil
}

func scanUUID(dst *uuid.UUID, src any) error {
	switch v := src.(type) {
	case nil:
		*dst = uuid.Nil
		return nil
	case string:
		if v == "" {
			*dst = uuid.Nil
			return nil
		}
	case []byte:
		if len(v) == 0 {
			*dst = uuid.Nil
			return nil
		}
	}
	return dst.Scan(src)
}
