// Package migrations embeds the goose migration files for the local
// document database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
