package migrations

import "embed"

// Files holds the forward-only schema migrations shipped with the binary.
//
//go:embed *.sql
var Files embed.FS
