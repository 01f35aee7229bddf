// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it under /swagger.
package docs

import (
	"eats/api"

	"github.com/swaggo/swag"
)

type document struct{}

func (document) ReadDoc() string {
	return string(api.Spec)
}

func init() {
	swag.Register(swag.Name, document{})
}
