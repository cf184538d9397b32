// Package materialize writes a rendered copy of a template tree into a target directory.
package materialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"

	"github.com/smartcontractkit/scaffold/internal/constants"
	"github.com/smartcontractkit/scaffold/internal/descriptor"
	"github.com/smartcontractkit/scaffold/internal/exclude"
	"github.com/smartcontractkit/scaffold/internal/params"
	"github.com/smartcontractkit/scaffold/internal/render"
)

type Options struct {
	TemplateRoot string
	// BaseDir is where the project directory is created, or written into when Append is set.
	// Defaults to the working directory.
	BaseDir string
	Append  bool
	Force   bool

	Exclude  *exclude.Matcher
	Renderer render.Renderer
	Logger   *zerolog.Logger

	// OnTarget is called once the target directory is chosen, before anything on disk changes.
	OnTarget func(dir string, action TargetAction)
}

type TargetAction int

const (
	TargetCreate TargetAction = iota
	TargetOverwrite
	TargetAppend
)

func (a TargetAction) String() string {
	switch a {
	case TargetOverwrite:
		return "overwrite"
	case TargetAppend:
		return "append"
	default:
		return "create"
	}
}

type Result struct {
	TargetDir string
	Dirs      int
	Files     int
	Notes     string
}

type Materializer struct {
	opts Options
	log  *zerolog.Logger
}

func New(opts Options) *Materializer {
	log := opts.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Materializer{opts: opts, log: log}
}

// DirName returns the directory name derived from a project name.
func DirName(projectName string) string {
	return strcase.ToKebab(projectName)
}

// PrepareTarget creates the directory the project is written into and returns its canonical path.
// Without Force an existing directory is a conflict and nothing is touched.
func (m *Materializer) PrepareTarget(projectName string) (string, error) {
	base := m.opts.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}

	target := base
	if m.opts.Append {
		m.announce(target, TargetAppend)
	} else {
		target = filepath.Join(base, DirName(projectName))

		_, err := os.Lstat(target)
		switch {
		case err == nil && !m.opts.Force:
			return "", fmt.Errorf("%w: %s (use --force to overwrite it)", ErrConflict, target)
		case err == nil:
			m.announce(target, TargetOverwrite)
			m.log.Debug().Str("dir", target).Msg("Removing existing target directory")
			if err := os.RemoveAll(target); err != nil {
				return "", &EntryError{Op: "remove", Path: target, Err: err}
			}
		case !errors.Is(err, fs.ErrNotExist):
			return "", &EntryError{Op: "stat", Path: target, Err: err}
		default:
			m.announce(target, TargetCreate)
		}

		if err := os.MkdirAll(target, constants.DefaultDirPerm); err != nil {
			return "", &EntryError{Op: "create", Path: target, Err: err}
		}
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", &EntryError{Op: "resolve", Path: target, Err: err}
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &EntryError{Op: "resolve", Path: abs, Err: err}
	}
	return canonical, nil
}

// Run prepares the target, seals the parameters with the target directory and writes every
// template entry. Directories are created before their contents and parents are never created
// on demand, so a failure leaves the partially written tree in place.
func (m *Materializer) Run(ctx context.Context, b *params.Builder, desc *descriptor.Descriptor) (*Result, error) {
	if m.opts.Renderer == nil {
		return nil, errors.New("materializer has no renderer")
	}

	nameValue, err := projectName(b)
	if err != nil {
		return nil, err
	}

	target, err := m.PrepareTarget(nameValue)
	if err != nil {
		return nil, err
	}
	if err := b.Set(constants.TargetDirParameter, params.String(target)); err != nil {
		return nil, err
	}
	p := b.Seal()

	res := &Result{TargetDir: target}
	m.log.Debug().Str("template", m.opts.TemplateRoot).Str("target", target).Msg("Materializing template")

	for entry, err := range Walk(m.opts.TemplateRoot, m.opts.Exclude) {
		if err != nil {
			return res, err
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := m.writeEntry(entry, target, p); err != nil {
			return res, err
		}
		if entry.Kind == KindDir {
			res.Dirs++
		} else {
			res.Files++
		}
	}

	if desc != nil && desc.Notes() != "" {
		notes, err := render.Named(m.opts.Renderer, "notes", desc.Notes(), p)
		if err != nil {
			return res, err
		}
		res.Notes = notes
	}

	return res, nil
}

func (m *Materializer) writeEntry(entry Entry, target string, p *params.Resolved) error {
	dest := filepath.Join(target, filepath.FromSlash(entry.Rel))
	renderedDest, err := render.Named(m.opts.Renderer, entry.Rel, dest, p)
	if err != nil {
		return err
	}

	switch entry.Kind {
	case KindDir:
		m.log.Debug().Str("dir", renderedDest).Msg("Creating directory")
		if err := os.Mkdir(renderedDest, constants.DefaultDirPerm); err != nil {
			if m.opts.Append && errors.Is(err, fs.ErrExist) && isDir(renderedDest) {
				return nil
			}
			return &EntryError{Op: "create", Path: renderedDest, Err: err}
		}
		return nil

	case KindFile:
		info, err := os.Stat(entry.Abs)
		if err != nil {
			return &EntryError{Op: "read", Path: entry.Abs, Err: err}
		}
		content, err := os.ReadFile(entry.Abs)
		if err != nil {
			return &EntryError{Op: "read", Path: entry.Abs, Err: err}
		}
		rendered, err := render.Named(m.opts.Renderer, entry.Rel, string(content), p)
		if err != nil {
			return err
		}
		m.log.Debug().Str("file", renderedDest).Msg("Writing file")
		if err := os.WriteFile(renderedDest, []byte(rendered), info.Mode().Perm()); err != nil {
			return &EntryError{Op: "write", Path: renderedDest, Err: err}
		}
		return nil

	default:
		return fmt.Errorf("unknown entry kind %v for %s", entry.Kind, entry.Rel)
	}
}

func (m *Materializer) announce(dir string, action TargetAction) {
	if m.opts.OnTarget != nil {
		m.opts.OnTarget(dir, action)
	}
}

func projectName(b *params.Builder) (string, error) {
	v, ok := b.Get(constants.NameParameter)
	if !ok {
		return "", fmt.Errorf("%w: project name is not set", params.ErrInvalidValue)
	}
	return v.String(), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
