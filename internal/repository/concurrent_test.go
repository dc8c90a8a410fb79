package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/smartfarm/internal/db"
	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/testutil"
)

// newConcurrentTestDB creates a file-backed database; unlike :memory: it is
// shared by every connection in the pool.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

func TestConcurrentAccess_AppendWhileReading(t *testing.T) {
	database := newConcurrentTestDB(t)
	repo := NewSQLiteChatHistoryRepo(database)
	ctx := context.Background()

	const writes, readers = 30, 3
	var wg sync.WaitGroup
	errs := make(chan error, writes+readers*writes)

	// SQLite allows one writer alongside many WAL readers.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			if err := repo.Append(ctx, testutil.NewTestMessage(domain.SenderUser, fmt.Sprintf("m-%d", i))); err != nil {
				errs <- err
			}
		}
	}()

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < writes; i++ {
				if _, err := repo.ListRecent(ctx, 20); err != nil {
					errs <- err
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent access error: %v", err)
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, writes, n)
}
