package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/chat-relay/internal/config"
	"github.com/zestagio/chat-relay/internal/logger"
	inmemeventstream "github.com/zestagio/chat-relay/internal/services/event-stream/in-mem"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() (errReturned error) {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	eventStream := inmemeventstream.New()
	defer multierr.AppendInvoke(&errReturned, multierr.Close(eventStream))

	shutdownCh := make(chan struct{})

	srvHub, err := initServerHub(
		cfg.Servers.Hub.Addr,
		cfg.Servers.Hub.AllowOrigins,
		cfg.Servers.Hub.SecWsProtocol,
		eventStream,
		shutdownCh,
		cfg.Global.IsProduction(),
	)
	if err != nil {
		return fmt.Errorf("init hub server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srvHub.Run(ctx) })

	// Websocket connections are hijacked, the server shutdown does not reach them.
	eg.Go(func() error {
		<-ctx.Done()
		close(shutdownCh)
		return nil
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
