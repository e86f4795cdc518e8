package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/cenkalti/backoff"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/chat-relay/internal/config"
	"github.com/zestagio/chat-relay/internal/logger"
	messagesrepo "github.com/zestagio/chat-relay/internal/repositories/messages"
	chatv1 "github.com/zestagio/chat-relay/internal/server-chat/v1"
	serverdebug "github.com/zestagio/chat-relay/internal/server-debug"
	"github.com/zestagio/chat-relay/internal/store"
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

	lg := zap.L().Named("main")

	// Store.
	storage, err := initStore(cfg.Stores)
	if err != nil {
		return fmt.Errorf("create store client: %v", err)
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(storage))

	if cfg.Global.IsProduction() && cfg.Stores.PSQL.Debug {
		lg.Warn("psql client in the debug mode")
	}

	if err := store.WaitReady(
		ctx,
		storage,
		cfg.Stores.Readiness.Attempts,
		backoff.NewConstantBackOff(cfg.Stores.Readiness.Interval),
	); err != nil {
		return fmt.Errorf("wait store: %v", err)
	}

	// Migrations.
	if err := storage.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %v", err)
	}

	// Repositories.
	msgRepo, err := messagesrepo.New(messagesrepo.NewOptions(storage))
	if err != nil {
		return fmt.Errorf("create messages repo: %v", err)
	}

	// Services.
	publisher, err := initRelayPublisher(cfg.Relay)
	if err != nil {
		return fmt.Errorf("init relay publisher: %v", err)
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(publisher))

	// Servers.
	chatV1Swagger, err := chatv1.GetSwagger()
	if err != nil {
		return fmt.Errorf("get chat v1 swagger: %v", err)
	}

	srvChat, err := initServerChat(
		cfg.Servers.Chat.Addr,
		cfg.Servers.Chat.AllowOrigins,
		cfg.Servers.Chat.MaxBodyLength,
		chatV1Swagger,
		msgRepo,
		publisher,
		cfg.Global.IsProduction(),
	)
	if err != nil {
		return fmt.Errorf("init chat server: %v", err)
	}

	srvDebug, err := serverdebug.New(serverdebug.NewOptions(
		cfg.Servers.Debug.Addr,
		chatV1Swagger,
	))
	if err != nil {
		return fmt.Errorf("init debug server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvChat.Run(ctx) })
	eg.Go(func() error { return srvDebug.Run(ctx) })

	// Run services.
	eg.Go(func() error { return publisher.Run(ctx) })

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
