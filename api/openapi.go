// Package api holds the OpenAPI document of the installation service.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml openapi.yaml

// Spec is api/openapi.yaml.
//
//go:embed openapi.yaml
var Spec []byte
