package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/pgutil"
)

type testDao struct {
	bun.BaseModel `bun:"table:test_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Age           int    `bun:",nullzero"`
}

// offlineDB builds queries without ever connecting.
func offlineDB() *bun.DB {
	return bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
}

func TestModelIndexName(t *testing.T) {
	db := offlineDB()

	name, err := ModelIndexName(db, &testDao{}, "name")
	require.NoError(t, err)
	assert.Equal(t, "idx_test_table_name", name)

	_, err = ModelIndexName(db, nil, "name")
	require.Error(t, err)
}

func TestRunMigrations_Usage(t *testing.T) {
	ctx := context.Background()

	err := RunMigrations(ctx, nil, zap.NewNop())
	require.ErrorIs(t, err, ErrUsage)

	err = RunMigrations(ctx, nil, zap.NewNop(), "sideways")
	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "sideways")
}

func indexExists(t *testing.T, db *bun.DB, name string) bool {
	t.Helper()
	var exists bool
	err := db.NewRaw(`SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`, name).
		Scan(context.Background(), &exists)
	require.NoError(t, err)
	return exists
}

func TestCreateAndDropSchema(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, CreateSchema(ctx, db, &testDao{}))
	pgutil.AssertTableExists(t, db, "test_table")

	// idempotent
	require.NoError(t, CreateSchema(ctx, db, &testDao{}))

	require.NoError(t, DropTables(ctx, db, &testDao{}))
	pgutil.AssertTableNotExists(t, db, "test_table")
	require.NoError(t, DropTables(ctx, db, &testDao{}))
}

func TestCreateAndDropModelIndexes(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, CreateSchema(ctx, db, &testDao{}))
	require.NoError(t, CreateModelIndexes(ctx, db, &testDao{}, "name", "age"))
	pgutil.AssertIndexExists(t, db, "idx_test_table_name")
	pgutil.AssertIndexExists(t, db, "idx_test_table_age")

	require.NoError(t, CreateModelIndexes(ctx, db, &testDao{}, "name"))

	require.NoError(t, DropModelIndexes(ctx, db, &testDao{}, "name", "age"))
	assert.False(t, indexExists(t, db, "idx_test_table_name"))
	assert.False(t, indexExists(t, db, "idx_test_table_age"))
	require.NoError(t, DropModelIndexes(ctx, db, &testDao{}, "name"))
}
