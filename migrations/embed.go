// Package migrations embeds the goose SQL migrations for the lines and
// stations tables. cmd/api applies them on start and the integration tests
// apply them in TestMain.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
