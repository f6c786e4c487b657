// Package migrations holds the goose SQL migrations, embedded so the bot
// binary can migrate its own schema at startup.
package migrations

import "embed"

//go:embed *.sql
var Embed embed.FS
