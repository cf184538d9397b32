package render

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/iancoleman/strcase"
)

var caseFilters = map[string]func(string) string{
	"kebab_case":       strcase.ToKebab,
	"snake_case":       strcase.ToSnake,
	"camel_case":       strcase.ToLowerCamel,
	"pascal_case":      strcase.ToCamel,
	"upper_snake_case": strcase.ToScreamingSnake,
}

func registerFilters() error {
	for name, fn := range caseFilters {
		if pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, caseFilter(fn)); err != nil {
			return err
		}
	}
	if !pongo2.FilterExists("range") {
		if err := pongo2.RegisterFilter("range", filterRange); err != nil {
			return err
		}
	}
	return nil
}

func caseFilter(fn func(string) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}

// filterRange turns n into [0, n). With a parameter, {{ n|range:start }} yields [start, n).
func filterRange(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsInteger() {
		return nil, &pongo2.Error{
			Sender:    "filter:range",
			OrigError: fmt.Errorf("range expects an integer, got %q", in.String()),
		}
	}
	start := 0
	if param != nil && !param.IsNil() {
		if !param.IsInteger() {
			return nil, &pongo2.Error{
				Sender:    "filter:range",
				OrigError: fmt.Errorf("range start must be an integer, got %q", param.String()),
			}
		}
		start = param.Integer()
	}
	end := in.Integer()

	out := make([]int, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return pongo2.AsValue(out), nil
}
