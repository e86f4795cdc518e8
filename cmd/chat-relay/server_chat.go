package main

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	messagesrepo "github.com/zestagio/chat-relay/internal/repositories/messages"
	"github.com/zestagio/chat-relay/internal/server"
	serverchat "github.com/zestagio/chat-relay/internal/server-chat"
	chatv1 "github.com/zestagio/chat-relay/internal/server-chat/v1"
	"github.com/zestagio/chat-relay/internal/server/errhandler"
	relaypublisher "github.com/zestagio/chat-relay/internal/services/relay-publisher"
	submitmessage "github.com/zestagio/chat-relay/internal/usecases/submit-message"
)

const nameServerChat = "server-chat"

func initServerChat(
	addr string,
	allowOrigins []string,
	maxBodyLength int,
	v1Swagger *openapi3.T,

	msgRepo *messagesrepo.Repo,
	publisher *relaypublisher.Service,

	productionMode bool,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerChat)

	submitMessageUseCase, err := submitmessage.New(submitmessage.NewOptions(
		msgRepo,
		publisher,
		submitmessage.WithMaxBodyLength(maxBodyLength),
	))
	if err != nil {
		return nil, fmt.Errorf("create submit message usecase: %v", err)
	}

	v1Handlers, err := chatv1.NewHandlers(chatv1.NewOptions(lg, submitMessageUseCase))
	if err != nil {
		return nil, fmt.Errorf("create v1 handlers: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, productionMode, errhandler.HTMLResponseBuilder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		allowOrigins,
		serverchat.NewHandlersRegistrar(v1Swagger, v1Handlers),
		errHandler.Handle,
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
