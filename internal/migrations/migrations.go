// AuraConnect | 2026
// migrations.go

// Package migrations holds the embedded goose migrations, one directory per
// supported database driver.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
