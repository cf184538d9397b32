package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/smartcontractkit/scaffold/internal/params"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	baseDir string
}

// WithBaseDir lets templates include and extend files relative to dir, usually the template root.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// Engine renders Django-style templates with pongo2.
type Engine struct {
	set *pongo2.TemplateSet
}

var _ Renderer = (*Engine)(nil)

var setup sync.Once

// New constructs an Engine. Output is never HTML escaped.
func New(options ...Option) (*Engine, error) {
	cfg := &config{baseDir: "."}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.baseDir == "" {
		cfg.baseDir = "."
	}

	var setupErr error
	setup.Do(func() {
		pongo2.SetAutoescape(false)
		setupErr = registerFilters()
	})
	if setupErr != nil {
		return nil, fmt.Errorf("failed to register template filters: %w", setupErr)
	}

	loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create template loader for %s: %w", cfg.baseDir, err)
	}

	return &Engine{set: pongo2.NewSet("scaffold", loader)}, nil
}

// Render parses and executes tmpl with a fresh copy of the parameters.
func (e *Engine) Render(tmpl string, p *params.Resolved) (string, error) {
	if !strings.Contains(tmpl, "{{") && !strings.Contains(tmpl, "{%") && !strings.Contains(tmpl, "{#") {
		return tmpl, nil
	}

	t, err := e.set.FromString(tmpl)
	if err != nil {
		return "", &Error{Err: err}
	}

	var data pongo2.Context
	if p != nil {
		data = pongo2.Context(p.Context())
	}

	out, err := t.Execute(data)
	if err != nil {
		return "", &Error{Err: err}
	}
	return out, nil
}
