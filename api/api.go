// Package api embeds the OpenAPI description of the nbserve HTTP API.
package api

import _ "embed"

// Spec is the raw OpenAPI 3 document.
//
//go:embed openapi.yaml
var Spec []byte
