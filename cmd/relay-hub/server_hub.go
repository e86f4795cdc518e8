package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zestagio/chat-relay/internal/server"
	serverhub "github.com/zestagio/chat-relay/internal/server-hub"
	hubevents "github.com/zestagio/chat-relay/internal/server-hub/events"
	"github.com/zestagio/chat-relay/internal/server/errhandler"
	inmemeventstream "github.com/zestagio/chat-relay/internal/services/event-stream/in-mem"
	websocketstream "github.com/zestagio/chat-relay/internal/websocket-stream"
)

const nameServerHub = "server-hub"

func initServerHub(
	addr string,
	allowOrigins []string,
	secWsProtocol string,

	eventStream *inmemeventstream.Service,
	shutdownCh <-chan struct{},

	productionMode bool,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerHub)

	wsHandler, err := websocketstream.NewHTTPHandler(websocketstream.NewOptions(
		lg,
		eventStream,
		hubevents.Adapter{},
		hubevents.Adapter{},
		websocketstream.JSONEventWriter{},
		websocketstream.NewUpgrader(allowOrigins, secWsProtocol),
		shutdownCh,
	))
	if err != nil {
		return nil, fmt.Errorf("create ws handler: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, productionMode, errhandler.JSONResponseBuilder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		allowOrigins,
		serverhub.NewHandlersRegistrar(wsHandler.Serve),
		errHandler.Handle,
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
