package submitmessage

import (
	"fmt"
	"time"

	"github.com/zestagio/chat-relay/internal/types"
	"github.com/zestagio/chat-relay/internal/validator"
)

// MaxBodyLength is the default cap on the raw message body, in characters.
const MaxBodyLength = 500

type Request struct {
	Sender string
	Body   string
}

// Validate checks the raw client input. The body length is counted in characters
// before sanitization, so escaping never turns an accepted message into a rejected one.
func (r Request) Validate(maxBodyLength int) error {
	if err := validator.Validator.Var(r.Sender, "required"); err != nil {
		return fmt.Errorf("%w: sender", ErrMissingField)
	}
	if err := validator.Validator.Var(r.Body, "required"); err != nil {
		return fmt.Errorf("%w: body", ErrMissingField)
	}
	if err := validator.Validator.Var(r.Body, fmt.Sprintf("max=%d", maxBodyLength)); err != nil {
		return fmt.Errorf("%w: %d characters at most", ErrMessageTooLong, maxBodyLength)
	}
	return nil
}

type Response struct {
	MessageID types.MessageID
	CreatedAt time.Time
}
