package migrations

import "embed"

// FS holds the goose SQL migrations applied by cmd/migrator and PG_AUTO_MIGRATE.
//
//go:embed *.sql
var FS embed.FS
