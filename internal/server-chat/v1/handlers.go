package chatv1

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	submitmessage "github.com/zestagio/chat-relay/internal/usecases/submit-message"
)

// ServerInterface is the chat ingestion API described by openapi.yaml.
type ServerInterface interface {
	// PostSubmitMessage accepts a message form (POST /).
	PostSubmitMessage(eCtx echo.Context) error
}

var _ ServerInterface = Handlers{}

//go:generate mockgen -source=$GOFILE -destination=mocks/handlers_mocks.gen.go -package=chatv1mocks
type submitMessageUseCase interface {
	Handle(ctx context.Context, req submitmessage.Request) (submitmessage.Response, error)
}

//go:generate options-gen -out-filename=handlers_options.gen.go -from-struct=Options
type Options struct {
	logger        *zap.Logger          `option:"mandatory" validate:"required"`
	submitMessage submitMessageUseCase `option:"mandatory" validate:"required"`
}

type Handlers struct {
	Options
}

func NewHandlers(opts Options) (Handlers, error) {
	if err := opts.Validate(); err != nil {
		return Handlers{}, fmt.Errorf("validate options: %v", err)
	}
	return Handlers{Options: opts}, nil
}
