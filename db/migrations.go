// Package db embeds the goose migrations so the migrator binary carries its own schema.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
