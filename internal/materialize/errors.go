package materialize

import (
	"errors"
	"fmt"
)

var ErrConflict = errors.New("target directory already exists")

// EntryError is a filesystem failure on a single path.
type EntryError struct {
	Op   string
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
