package humadocs

import (
	"reflect"

	"github.com/danielgtaylor/huma/v2"
)

// SimpleHeader builds a string-typed header parameter for use with
// Parameters. Header parameters use OpenAPI's default "simple" style.
func SimpleHeader(reg huma.Registry, name, description string, required bool) *huma.Param {
	return simpleParam(reg, name, description, required, "header")
}

// SimpleCookie builds a string-typed cookie parameter for use with
// Parameters. Cookie parameters use OpenAPI's default "form" style.
func SimpleCookie(reg huma.Registry, name, description string, required bool) *huma.Param {
	return simpleParam(reg, name, description, required, "cookie")
}

func simpleParam(reg huma.Registry, name, description string, required bool, in string) *huma.Param {
	return &huma.Param{
		Name:        name,
		In:          in,
		Description: description,
		Required:    required,
		Schema:      reg.Schema(reflect.TypeOf(""), true, ""),
	}
}
