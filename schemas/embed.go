// Package schemas provides the embedded SQL migrations of the lexicon database.
package schemas

import "embed"

// Migrations holds one directory per database driver. Files are applied in name order.
//
//go:embed migrations/*/*.sql
var Migrations embed.FS
