package messagesrepo

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/zestagio/chat-relay/internal/store"
	"github.com/zestagio/chat-relay/internal/types"
)

// Append stores a new immutable message. ID and CreatedAt are assigned here.
func (r *Repo) Append(ctx context.Context, sender, body string) (Message, error) {
	ctx, cancel := context.WithTimeout(ctx, r.appendTimeout)
	defer cancel()

	msg := Message{
		ID:        types.NewMessageID(),
		Sender:    sender,
		Body:      body,
		CreatedAt: r.nextCreatedAt(),
	}

	query, args := entsql.Dialect(r.db.Dialect()).
		Insert(store.MessagesTableName).
		Columns(store.MessagesFieldID, store.MessagesFieldSender, store.MessagesFieldBody, store.MessagesFieldCreatedAt).
		Values(msg.ID, msg.Sender, msg.Body, msg.CreatedAt).
		Query()
	if err := r.db.Driver().Exec(ctx, query, args, nil); err != nil {
		return Message{}, fmt.Errorf("insert message: %v", err)
	}

	return msg, nil
}
