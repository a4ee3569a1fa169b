// Package migrations embeds the goose SQL migrations so the server binary and
// tests can apply them without a checkout of the repository.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
