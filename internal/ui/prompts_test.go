package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/internal/params"
)

func TestWithLabels(t *testing.T) {
	cfg := confirmConfig{}
	opt := WithLabels("Accept", "Decline")
	opt(&cfg)

	assert.Equal(t, "Accept", cfg.affirmative)
	assert.Equal(t, "Decline", cfg.negative)
}

func TestConfirmOptionsCompose(t *testing.T) {
	cfg := confirmConfig{}
	opts := []ConfirmOption{
		WithLabels("Yes", "No"),
		WithDescription("Are you sure?"),
		WithConfirmDefault(true),
	}
	for _, o := range opts {
		o(&cfg)
	}

	assert.Equal(t, "Yes", cfg.affirmative)
	assert.Equal(t, "No", cfg.negative)
	assert.Equal(t, "Are you sure?", cfg.description)
	assert.True(t, cfg.value)
}

func TestInputOptionsCompose(t *testing.T) {
	cfg := inputConfig{}
	opts := []InputOption{
		WithInputDescription("desc"),
		WithPlaceholder("ph"),
		WithDefault("go"),
		WithValidate(func(string) error { return nil }),
		WithPassword(),
	}
	for _, o := range opts {
		o(&cfg)
	}

	assert.Equal(t, "desc", cfg.description)
	assert.Equal(t, "ph", cfg.placeholder)
	assert.Equal(t, "go", cfg.value)
	assert.NotNil(t, cfg.validate)
	assert.True(t, cfg.password)
}

func TestNumberValidator(t *testing.T) {
	integer := numberValidator(true, true)
	assert.NoError(t, integer("42"))
	assert.NoError(t, integer(" -3 "))
	assert.Error(t, integer("4.2"))
	assert.Error(t, integer(""))

	float := numberValidator(false, false)
	assert.NoError(t, float("4.2"))
	assert.NoError(t, float(""))
	assert.Error(t, float("abc"))
}

func TestTextValidator(t *testing.T) {
	assert.Error(t, textValidator(true, nil)("  "))
	assert.NoError(t, textValidator(false, nil)(""))
	assert.EqualError(t, textValidator(false, func(string) error { return errors.New("bad") })("x"), "bad")
}

func fakePrompter() *Prompter {
	return &Prompter{
		input: func(_ context.Context, _ string, opts ...InputOption) (string, error) {
			cfg := inputConfig{}
			for _, o := range opts {
				o(&cfg)
			}
			if cfg.validate != nil {
				if err := cfg.validate(cfg.value); err != nil {
					return "", err
				}
			}
			return cfg.value, nil
		},
		confirm: func(_ context.Context, _ string, opts ...ConfirmOption) (bool, error) {
			cfg := confirmConfig{}
			for _, o := range opts {
				o(&cfg)
			}
			return cfg.value, nil
		},
		selectOne: func(_ context.Context, _ string, options []SelectOption[int], initial int) (int, error) {
			return options[initial].Value, nil
		},
		selectMulti: func(_ context.Context, _ string, options []SelectOption[int], selected []int) ([]int, error) {
			return selected, nil
		},
	}
}

func TestPrompter_AcceptsDefaults(t *testing.T) {
	p := fakePrompter()
	ctx := context.Background()

	text, err := p.Text(ctx, params.TextRequest{Message: "Author?", Default: "anon"})
	require.NoError(t, err)
	assert.Equal(t, "anon", text)

	num, err := p.Number(ctx, params.NumberRequest{Message: "Count?", Default: "3", Integer: true})
	require.NoError(t, err)
	assert.Equal(t, "3", num)

	yes, err := p.Confirm(ctx, params.ConfirmRequest{Message: "Tests?", Default: true})
	require.NoError(t, err)
	assert.True(t, yes)

	idx, err := p.Select(ctx, params.SelectRequest{Message: "Lang?", Options: []string{"go", "rust"}, DefaultIndex: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	indices, err := p.MultiSelect(ctx, params.SelectRequest{Message: "Features?", Options: []string{"a", "b", "c"}, Selected: []int{0, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, indices)
}

func TestPrompter_Errors(t *testing.T) {
	p := fakePrompter()

	_, err := p.Text(context.Background(), params.TextRequest{Message: "Name?", Required: true})
	assert.ErrorIs(t, err, params.ErrPrompt)

	p.confirm = func(context.Context, string, ...ConfirmOption) (bool, error) {
		return false, huh.ErrUserAborted
	}
	_, err = p.Confirm(context.Background(), params.ConfirmRequest{Message: "Sure?"})
	require.Error(t, err)
	assert.ErrorIs(t, err, params.ErrPrompt)
	assert.Contains(t, err.Error(), "cancelled by user")

	p.confirm = func(context.Context, string, ...ConfirmOption) (bool, error) {
		return false, context.Canceled
	}
	_, err = p.Confirm(context.Background(), params.ConfirmRequest{Message: "Sure?"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, params.ErrPrompt)
}

func TestIndexOptions(t *testing.T) {
	opts := indexOptions([]string{"go", "rust"})
	assert.Equal(t, []SelectOption[int]{{Label: "go", Value: 0}, {Label: "rust", Value: 1}}, opts)
}
