package postgres

import "embed"

// Migrations holds the schema migrations compiled into the binary.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations that holds the files.
const MigrationsDir = "migrations"
