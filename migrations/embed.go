// Package migrations embeds the goose SQL migrations so they can be applied
// by the server (auto-migrate), the test helper, and the goose CLI alike.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
