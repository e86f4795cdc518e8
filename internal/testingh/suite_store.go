package testingh

import (
	"context"
	"path/filepath"

	"github.com/stretchr/testify/require"

	"github.com/zestagio/chat-relay/internal/store"
)

// StoreSuite runs tests against a migrated SQLite store.
type StoreSuite struct {
	ContextSuite

	Store *store.Client
}

func (ss *StoreSuite) SetupSuite() {
	ss.ContextSuite.SetupSuite()
	ss.Store = NewSQLiteStore(ss.SuiteCtx, ss.T())
}

func (ss *StoreSuite) TearDownSuite() {
	if ss.Store != nil {
		ss.NoError(ss.Store.Close())
	}
	ss.ContextSuite.TearDownSuite()
}

// TestingT is satisfied by *testing.T and ginkgo.GinkgoT().
type TestingT interface {
	require.TestingT
	Helper()
	TempDir() string
}

// NewSQLiteStore opens a private database file with the schema applied.
// The caller owns the returned client.
func NewSQLiteStore(ctx context.Context, t TestingT) *store.Client {
	t.Helper()

	// Shared-cache memory databases fail concurrent writers with SQLITE_LOCKED,
	// a file with busy timeout makes them wait instead.
	dsn := "file:" + filepath.Join(t.TempDir(), "store.db") + "?_fk=1&_busy_timeout=5000"
	client, err := store.NewSQLiteClient(store.NewSQLiteOptions(dsn))
	require.NoError(t, err)
	require.NoError(t, client.Migrate(ctx))
	return client
}
