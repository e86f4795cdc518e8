package messagesrepo

import (
	"time"

	"github.com/zestagio/chat-relay/internal/types"
)

type Message struct {
	ID        types.MessageID
	Sender    string
	Body      string
	CreatedAt time.Time
}
