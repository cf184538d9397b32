package params

import (
	"context"
	"errors"
)

var ErrPrompt = errors.New("prompt failed")

type TextRequest struct {
	Message  string
	Default  string
	Required bool
	// Validate, when set, is applied to every answer before it is accepted.
	Validate func(string) error
}

type NumberRequest struct {
	Message  string
	Default  string
	Required bool
	Integer  bool
}

type ConfirmRequest struct {
	Message string
	Default bool
}

type SelectRequest struct {
	Message      string
	Options      []string
	DefaultIndex int
	// Selected holds the preselected indices of a multiselect.
	Selected []int
}

// Prompter asks the user for values. Implementations block until an answer is given.
type Prompter interface {
	Text(ctx context.Context, req TextRequest) (string, error)
	// Number returns the raw text of a syntactically valid number.
	Number(ctx context.Context, req NumberRequest) (string, error)
	Confirm(ctx context.Context, req ConfirmRequest) (bool, error)
	Select(ctx context.Context, req SelectRequest) (int, error)
	MultiSelect(ctx context.Context, req SelectRequest) ([]int, error)
}
