package render

import (
	"text/template"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

var pluralizer = pluralize.NewClient()

// Funcs returns the string-transformation helpers exposed to templates.
// They are pure and stateless; templates use them as pipelines, e.g.
// {{ .name | snakeCase | plural }}.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"snakeCase":      strcase.ToSnake,
		"camelCase":      strcase.ToLowerCamel,
		"lowerCamelCase": strcase.ToLowerCamel,
		"pascalCase":     strcase.ToCamel,
		"kebabCase":      strcase.ToKebab,
		"plural":         pluralizer.Plural,
		"singular":       pluralizer.Singular,
	}
}
