package submitmessage

import (
	"context"
	"errors"
	"fmt"

	messagesrepo "github.com/zestagio/chat-relay/internal/repositories/messages"
	"github.com/zestagio/chat-relay/internal/sanitizer"
	relaypublisher "github.com/zestagio/chat-relay/internal/services/relay-publisher"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=submitmessagemocks

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrMissingField    = errors.New("missing field")
	ErrMessageTooLong  = errors.New("message too long")
	ErrMessageNotSaved = errors.New("message not saved")
)

type messagesRepository interface {
	Append(ctx context.Context, sender, body string) (messagesrepo.Message, error)
}

type relayPublisher interface {
	Publish(msg relaypublisher.Message)
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	msgRepo       messagesRepository `option:"mandatory" validate:"required"`
	publisher     relayPublisher     `option:"mandatory" validate:"required"`
	maxBodyLength int                `default:"500" validate:"min=1,max=10000"`
}

type UseCase struct {
	Options
}

func New(opts Options) (UseCase, error) {
	return UseCase{Options: opts}, opts.Validate()
}

// Handle validates, sanitizes and stores the message, then hands it to the relay.
// It never waits for the relay delivery.
func (u UseCase) Handle(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(u.maxBodyLength); err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	sender, body := sanitizer.Sanitize(req.Sender), sanitizer.Sanitize(req.Body)
	if sender == "" || body == "" {
		return Response{}, fmt.Errorf("%w: %w: nothing left after sanitizing", ErrInvalidRequest, ErrMissingField)
	}

	msg, err := u.msgRepo.Append(ctx, sender, body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMessageNotSaved, err)
	}

	u.publisher.Publish(relaypublisher.Message{
		ID:        msg.ID,
		Sender:    msg.Sender,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	})

	return Response{
		MessageID: msg.ID,
		CreatedAt: msg.CreatedAt,
	}, nil
}
