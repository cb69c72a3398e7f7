// Package migrations embeds the SQL migrations applied by goose when the
// server starts with a PostgreSQL store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
