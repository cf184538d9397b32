package materialize

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"unicode/utf8"

	"github.com/smartcontractkit/scaffold/internal/exclude"
)

var ErrInvalidPath = errors.New("path is not valid UTF-8")

type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
)

func (k EntryKind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is a directory or file found under the template root.
type Entry struct {
	// Rel is slash-separated and relative to the template root.
	Rel  string
	Kind EntryKind
	Abs  string
}

// Walk yields the entries under root depth-first in lexical order, skipping root itself.
// Excluded directories are not descended into. Iteration stops after the first error.
func Walk(root string, matcher *exclude.Matcher) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return &EntryError{Op: "walk", Path: path, Err: err}
			}
			if path == root {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return &EntryError{Op: "walk", Path: path, Err: err}
			}
			if !utf8.ValidString(rel) {
				return &EntryError{Op: "walk", Path: path, Err: ErrInvalidPath}
			}
			rel = filepath.ToSlash(rel)

			if matcher.Excludes(rel) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			kind := KindFile
			if d.IsDir() {
				kind = KindDir
			}
			if !yield(Entry{Rel: rel, Kind: kind, Abs: path}, nil) {
				stopped = true
				return fs.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield(Entry{}, err)
		}
	}
}
