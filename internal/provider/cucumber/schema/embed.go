// Package schema embeds the JSON schema for cucumber result documents.
package schema

import "embed"

// FS holds cucumber.schema.json.
//
//go:embed cucumber.schema.json
var FS embed.FS
