// Package gamedata provides the embedded terrain and content property tables
// and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time, the
// property tables as well as the schemas they are validated against.
//
//go:embed *.json
var dataFS embed.FS
