package syncdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/vebal-sync/pkg/db/dao"
	mghelper "github.com/chainsafe/vebal-sync/pkg/pgutil/migrations"
)

var submissionIndexes = []string{"account", "created_at"}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &dao.SubmissionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &dao.SubmissionDao{}, submissionIndexes...)
	}, func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.DropModelIndexes(ctx, db, &dao.SubmissionDao{}, submissionIndexes...); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &dao.SubmissionDao{})
	})
}
