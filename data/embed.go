// Package data embeds the seed content served when no data directory is configured.
package data

import "embed"

//go:embed *.yaml
var FS embed.FS
