package relaypublisher

import (
	"encoding/json"
	"time"

	"github.com/zestagio/chat-relay/internal/types"
)

type Message struct {
	ID        types.MessageID
	Sender    string
	Body      string
	CreatedAt time.Time
}

// payload keeps the "username"/"message" keys live pages already understand.
type payload struct {
	ID        types.MessageID `json:"id"`
	Username  string          `json:"username"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(payload{
		ID:        m.ID,
		Username:  m.Sender,
		Message:   m.Body,
		CreatedAt: m.CreatedAt,
	})
}
