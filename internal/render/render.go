// Package render evaluates template strings against resolved parameters.
package render

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/scaffold/internal/params"
)

var ErrRender = errors.New("render failed")

// Renderer evaluates a template string. Implementations must be deterministic for equal inputs.
type Renderer interface {
	Render(tmpl string, p *params.Resolved) (string, error)
}

// Error describes a template that failed to parse or execute.
type Error struct {
	// Name identifies what was being rendered, such as a relative path.
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", ErrRender, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRender, e.Name, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrRender, e.Err}
}

// Named renders tmpl and attaches name to any render error.
func Named(r Renderer, name, tmpl string, p *params.Resolved) (string, error) {
	out, err := r.Render(tmpl, p)
	if err == nil {
		return out, nil
	}
	var rerr *Error
	if errors.As(err, &rerr) && rerr.Name == "" {
		return "", &Error{Name: name, Err: rerr.Err}
	}
	return "", err
}
