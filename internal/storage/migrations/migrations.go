// Package migrations embeds the SQL schema migrations for the run history.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
