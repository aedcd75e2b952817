// Package db carries the embedded schema migrations for the primary
// storage tier.
package db

import "embed"

// Migrations holds the SQL migration files applied on primary connect.
//
//go:embed migrations/*.sql
var Migrations embed.FS
