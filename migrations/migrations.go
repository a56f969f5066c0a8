package migrations

import "embed"

// Postgres holds the postgres schema migrations.
//
//go:embed postgres/*.sql
var Postgres embed.FS
