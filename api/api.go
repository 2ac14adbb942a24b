// Package api embeds the OpenAPI document that the HTTP adapter validates
// requests against and serves through swagger UI.
package api

import _ "embed"

// OpenAPI is the raw OpenAPI 3 document.
//
//go:embed openapi.json
var OpenAPI []byte
