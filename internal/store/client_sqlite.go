package store

import (
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	_ "github.com/mattn/go-sqlite3"
)

//go:generate options-gen -out-filename=client_sqlite_options.gen.go -from-struct=SQLiteOptions
type SQLiteOptions struct {
	// dsn must enable foreign keys (_fk=1), ent refuses to migrate otherwise.
	dsn   string `option:"mandatory" validate:"required,contains=_fk=1"`
	debug bool
}

// NewSQLiteClient opens a local SQLite store. Used for development and tests.
func NewSQLiteClient(opts SQLiteOptions) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	db, err := sql.Open(dialect.SQLite, opts.dsn)
	if err != nil {
		return nil, fmt.Errorf("init db driver: %v", err)
	}

	return newClient(dialect.SQLite, db, opts.debug), nil
}
