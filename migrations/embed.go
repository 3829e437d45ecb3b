// Package migrations embeds the goose SQL migrations so that binaries and
// tests apply exactly the schema they were built with.
package migrations

import "embed"

// FS holds every *.sql migration at its root.
//
//go:embed *.sql
var FS embed.FS
