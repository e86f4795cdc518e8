package main

import (
	"fmt"

	"github.com/zestagio/chat-relay/internal/config"
	"github.com/zestagio/chat-relay/internal/store"
)

const (
	driverPSQL   = "psql"
	driverSQLite = "sqlite"
)

func initStore(cfg config.StoresConfig) (*store.Client, error) {
	switch cfg.Driver {
	case driverPSQL:
		return store.NewPSQLClient(store.NewPSQLOptions(
			cfg.PSQL.Addr,
			cfg.Credentials.User,
			cfg.Credentials.Password,
			cfg.PSQL.Database,
			store.WithDebug(cfg.PSQL.Debug),
		))

	case driverSQLite:
		return store.NewSQLiteClient(store.NewSQLiteOptions(cfg.SQLite.DSN))
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
