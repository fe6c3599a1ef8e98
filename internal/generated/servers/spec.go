package servers

import (
	"github.com/getkin/kin-openapi/openapi3"

	"installation/api"
)

// GetSwagger returns the OpenAPI document the handlers were generated from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromData(api.Spec)
}
