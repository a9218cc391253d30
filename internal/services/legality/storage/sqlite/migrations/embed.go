package migrations

import "embed"

// FS contains embedded SQLite migrations for learnset storage.
//
//go:embed *.sql
var FS embed.FS
