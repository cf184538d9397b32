package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/smartcontractkit/scaffold/internal/params"
)

// Prompter asks for parameter values with interactive huh forms.
type Prompter struct {
	input       func(ctx context.Context, title string, opts ...InputOption) (string, error)
	confirm     func(ctx context.Context, title string, opts ...ConfirmOption) (bool, error)
	selectOne   func(ctx context.Context, title string, options []SelectOption[int], initial int) (int, error)
	selectMulti func(ctx context.Context, title string, options []SelectOption[int], selected []int) ([]int, error)
}

var _ params.Prompter = (*Prompter)(nil)

func NewPrompter() *Prompter {
	return &Prompter{
		input:       Input,
		confirm:     Confirm,
		selectOne:   Select[int],
		selectMulti: MultiSelect[int],
	}
}

func (p *Prompter) Text(ctx context.Context, req params.TextRequest) (string, error) {
	answer, err := p.input(ctx, req.Message,
		WithDefault(req.Default),
		WithValidate(textValidator(req.Required, req.Validate)),
	)
	if err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

func (p *Prompter) Number(ctx context.Context, req params.NumberRequest) (string, error) {
	answer, err := p.input(ctx, req.Message,
		WithDefault(req.Default),
		WithValidate(numberValidator(req.Integer, req.Required)),
	)
	if err != nil {
		return "", promptError(err)
	}
	return strings.TrimSpace(answer), nil
}

func (p *Prompter) Confirm(ctx context.Context, req params.ConfirmRequest) (bool, error) {
	answer, err := p.confirm(ctx, req.Message, WithConfirmDefault(req.Default))
	if err != nil {
		return false, promptError(err)
	}
	return answer, nil
}

func (p *Prompter) Select(ctx context.Context, req params.SelectRequest) (int, error) {
	idx, err := p.selectOne(ctx, req.Message, indexOptions(req.Options), req.DefaultIndex)
	if err != nil {
		return 0, promptError(err)
	}
	return idx, nil
}

func (p *Prompter) MultiSelect(ctx context.Context, req params.SelectRequest) ([]int, error) {
	indices, err := p.selectMulti(ctx, req.Message, indexOptions(req.Options), req.Selected)
	if err != nil {
		return nil, promptError(err)
	}
	return indices, nil
}

// Passphrase asks for a secret without echoing it.
func (p *Prompter) Passphrase(ctx context.Context, title string) (string, error) {
	answer, err := p.input(ctx, title, WithPassword())
	if err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

func indexOptions(labels []string) []SelectOption[int] {
	options := make([]SelectOption[int], len(labels))
	for i, label := range labels {
		options[i] = SelectOption[int]{Label: label, Value: i}
	}
	return options
}

func textValidator(required bool, extra func(string) error) func(string) error {
	return func(s string) error {
		if required && strings.TrimSpace(s) == "" {
			return errors.New("a value is required")
		}
		if extra != nil {
			return extra(s)
		}
		return nil
	}
}

func numberValidator(integer, required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return errors.New("a value is required")
			}
			return nil
		}
		if integer {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				return fmt.Errorf("%q is not an integer", s)
			}
			return nil
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		return nil
	}
}

func promptError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("%w: cancelled by user", params.ErrPrompt)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", params.ErrPrompt, err)
}
