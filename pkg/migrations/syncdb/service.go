// Package syncdb holds the migrations of the sync service database
package syncdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all sync service migrations
var Migrations = migrate.NewMigrations()
