package ui

import (
	"context"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// --- Option types for functional options pattern ---

// ConfirmOption configures a Confirm prompt.
type ConfirmOption func(*confirmConfig)

type confirmConfig struct {
	affirmative string
	negative    string
	description string
	value       bool
}

// WithLabels sets custom affirmative/negative button labels for Confirm.
func WithLabels(affirmative, negative string) ConfirmOption {
	return func(c *confirmConfig) {
		c.affirmative = affirmative
		c.negative = negative
	}
}

// WithDescription sets the description text for a prompt.
func WithDescription(desc string) ConfirmOption {
	return func(c *confirmConfig) {
		c.description = desc
	}
}

// WithConfirmDefault sets the preselected answer.
func WithConfirmDefault(value bool) ConfirmOption {
	return func(c *confirmConfig) {
		c.value = value
	}
}

// accessible falls back to plain line-based prompts when stdin is not a terminal.
func accessible() bool {
	return os.Getenv("ACCESSIBLE") != "" || !term.IsTerminal(int(os.Stdin.Fd()))
}

func runForm(ctx context.Context, fields ...huh.Field) error {
	form := huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(ScaffoldTheme()).WithAccessible(accessible())

	return form.RunWithContext(ctx)
}

// Confirm displays a yes/no confirmation prompt and returns the user's choice.
func Confirm(ctx context.Context, title string, opts ...ConfirmOption) (bool, error) {
	cfg := confirmConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	result := cfg.value
	confirm := huh.NewConfirm().
		Title(title).
		Value(&result)

	if cfg.affirmative != "" {
		confirm = confirm.Affirmative(cfg.affirmative)
	}
	if cfg.negative != "" {
		confirm = confirm.Negative(cfg.negative)
	}
	if cfg.description != "" {
		confirm = confirm.Description(cfg.description)
	}

	if err := runForm(ctx, confirm); err != nil {
		return false, err
	}
	return result, nil
}

// --- Input ---

// InputOption configures an Input prompt.
type InputOption func(*inputConfig)

type inputConfig struct {
	description string
	placeholder string
	value       string
	validate    func(string) error
	password    bool
}

// WithInputDescription sets the description for an Input prompt.
func WithInputDescription(desc string) InputOption {
	return func(c *inputConfig) {
		c.description = desc
	}
}

// WithPlaceholder sets the placeholder text for an Input prompt.
func WithPlaceholder(placeholder string) InputOption {
	return func(c *inputConfig) {
		c.placeholder = placeholder
	}
}

// WithDefault pre-fills the input so pressing enter accepts it.
func WithDefault(value string) InputOption {
	return func(c *inputConfig) {
		c.value = value
	}
}

// WithValidate rejects answers until fn returns nil.
func WithValidate(fn func(string) error) InputOption {
	return func(c *inputConfig) {
		c.validate = fn
	}
}

// WithPassword hides the typed characters.
func WithPassword() InputOption {
	return func(c *inputConfig) {
		c.password = true
	}
}

// Input displays a single text input prompt and returns the entered value.
func Input(ctx context.Context, title string, opts ...InputOption) (string, error) {
	cfg := inputConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	result := cfg.value
	input := huh.NewInput().
		Title(title).
		Value(&result)

	if cfg.description != "" {
		input = input.Description(cfg.description)
	}
	if cfg.placeholder != "" {
		input = input.Placeholder(cfg.placeholder)
	}
	if cfg.validate != nil {
		input = input.Validate(cfg.validate)
	}
	if cfg.password {
		input = input.EchoMode(huh.EchoModePassword)
	}

	if err := runForm(ctx, input); err != nil {
		return "", err
	}
	return result, nil
}

// --- Select ---

// SelectOption represents a single option in a Select prompt.
type SelectOption[T comparable] struct {
	Label string
	Value T
}

// Select displays a selection prompt and returns the chosen value.
// The option whose value equals initial is highlighted first.
func Select[T comparable](ctx context.Context, title string, options []SelectOption[T], initial T) (T, error) {
	result := initial

	huhOpts := make([]huh.Option[T], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt.Label, opt.Value)
	}

	field := huh.NewSelect[T]().
		Title(title).
		Options(huhOpts...).
		Value(&result)

	if err := runForm(ctx, field); err != nil {
		return result, err
	}
	return result, nil
}

// MultiSelect displays a multiple choice prompt and returns the chosen values in option order.
func MultiSelect[T comparable](ctx context.Context, title string, options []SelectOption[T], selected []T) ([]T, error) {
	var result []T

	huhOpts := make([]huh.Option[T], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt.Label, opt.Value).Selected(contains(selected, opt.Value))
	}

	field := huh.NewMultiSelect[T]().
		Title(title).
		Options(huhOpts...).
		Value(&result)

	if err := runForm(ctx, field); err != nil {
		return nil, err
	}
	return result, nil
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
