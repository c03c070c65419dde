package schema

import "embed"

// schemaFS holds the embedded result schemas, one file per family,
// each with $defs for the full and compact forms.
//
//go:embed *.schema.json
var schemaFS embed.FS
