package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"go.uber.org/zap"
)

// Client is a write-oriented handle to the durable message store.
type Client struct {
	db      *sql.DB
	dialect string
	drv     dialect.Driver
}

func newClient(dialectName string, db *sql.DB, debug bool) *Client {
	var drv dialect.Driver = entsql.OpenDB(dialectName, db)
	if debug {
		drv = dialect.Debug(drv, func(a ...any) {
			zap.L().Named("store").Sugar().Debug(a...)
		})
	}
	return &Client{
		db:      db,
		dialect: dialectName,
		drv:     drv,
	}
}

// Dialect returns the SQL dialect of the underlying database.
func (c *Client) Dialect() string {
	return c.dialect
}

// Driver returns the ent driver to execute statements with.
func (c *Client) Driver() dialect.Driver {
	return c.drv
}

// Ping checks that the database accepts connections.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Migrate creates the missing tables and indexes.
func (c *Client) Migrate(ctx context.Context) error {
	m, err := schema.NewMigrate(c.drv)
	if err != nil {
		return fmt.Errorf("init migrate: %v", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create schema: %v", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.drv.Close()
}
