package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/vebal-sync/pkg/migrations/syncdb"
	"github.com/chainsafe/vebal-sync/pkg/pgutil"
)

const submissionsTable = "sync_submissions"

func TestSyncDB_Lifecycle(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, syncdb.Migrations)
	require.NoError(t, migrator.Init(ctx))

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	assert.False(t, group.IsZero(), "expected the initial migration to run")

	pgutil.AssertTableExists(t, db, submissionsTable)
	pgutil.AssertIndexExists(t, db, "idx_sync_submissions_account")
	pgutil.AssertIndexExists(t, db, "idx_sync_submissions_created_at")
	pgutil.AssertColumnType(t, db, submissionsTable, "id", "uuid")
	pgutil.AssertColumnType(t, db, submissionsTable, "native_fee", "numeric")

	group, err = migrator.Migrate(ctx)
	require.NoError(t, err)
	assert.True(t, group.IsZero(), "a second run must not apply anything")

	group, err = migrator.Rollback(ctx)
	require.NoError(t, err)
	assert.False(t, group.IsZero(), "expected rollback to revert a group")
	pgutil.AssertTableNotExists(t, db, submissionsTable)
}

func TestSyncDB_MigrationsRegistered(t *testing.T) {
	ms := syncdb.Migrations.Sorted()
	require.NotEmpty(t, ms)
	for _, m := range ms {
		assert.NotNil(t, m.Up, m.Name)
		assert.NotNil(t, m.Down, m.Name)
	}
}
