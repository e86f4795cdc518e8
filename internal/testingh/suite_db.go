//go:build integration

package testingh

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/zestagio/chat-relay/internal/store"
)

// DBSuite runs tests against a fresh Postgres database.
type DBSuite struct {
	ContextSuite

	DBPrefix string
	Store    *store.Client
	cleanUp  func(ctx context.Context)
}

func NewDBSuite(dbPrefix string) DBSuite {
	return DBSuite{DBPrefix: dbPrefix}
}

func (ds *DBSuite) SetupSuite() {
	ds.ContextSuite.SetupSuite()

	db := strings.ToLower(ds.DBPrefix + strings.ReplaceAll(uuid.New().String(), "-", ""))
	ds.T().Logf("database: %s", db)

	ds.Store, ds.cleanUp = PrepareDB(ds.SuiteCtx, ds.T(), db)
}

func (ds *DBSuite) TearDownSuite() {
	if f := ds.cleanUp; f != nil {
		f(ds.SuiteCtx)
	}
	ds.ContextSuite.TearDownSuite()
}
