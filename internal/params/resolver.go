package params

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartcontractkit/scaffold/internal/constants"
	"github.com/smartcontractkit/scaffold/internal/descriptor"
	"github.com/smartcontractkit/scaffold/internal/validation"
)

var ErrEmptyChoices = errors.New("parameter has no values to choose from")

const ProjectNameMessage = "What is the name of your generated project?"

// Resolver turns declared parameters into values, using presets first and prompts otherwise.
type Resolver struct {
	Prompter Prompter
	// Presets maps parameter names to raw text given on the command line.
	Presets map[string]string
	Logger  *zerolog.Logger
}

func NewResolver(logger *zerolog.Logger, prompter Prompter, presets map[string]string) *Resolver {
	return &Resolver{Prompter: prompter, Presets: presets, Logger: logger}
}

// Resolve collects a value for every parameter in order, then the project name.
// The returned builder is not sealed so the caller can add the target directory.
func (r *Resolver) Resolve(ctx context.Context, specs []descriptor.NamedParameter, presetName string) (*Builder, error) {
	b := NewBuilder()

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := r.resolveOne(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", spec.Name, err)
		}
		if v == nil {
			r.logger().Debug().Str("parameter", spec.Name).Msg("Parameter left unset")
			continue
		}
		if err := b.Set(spec.Name, v); err != nil {
			return nil, err
		}
		r.logger().Debug().Str("parameter", spec.Name).Str("value", v.String()).Msg("Parameter resolved")
	}

	r.warnUnusedPresets(specs)

	name, err := r.resolveName(ctx, presetName)
	if err != nil {
		return nil, err
	}
	if err := b.Set(constants.NameParameter, String(name)); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *Resolver) resolveOne(ctx context.Context, spec descriptor.NamedParameter) (Value, error) {
	if spec.HasChoices() && len(spec.Values) == 0 {
		return nil, ErrEmptyChoices
	}

	if text, ok := r.Presets[spec.Name]; ok {
		return presetValue(spec, text)
	}

	if r.Prompter == nil {
		return nil, fmt.Errorf("%w: no value given and prompting is unavailable", ErrPrompt)
	}

	switch spec.Type {
	case descriptor.KindString:
		return r.promptText(ctx, spec)
	case descriptor.KindInteger, descriptor.KindFloat:
		return r.promptNumber(ctx, spec)
	case descriptor.KindBoolean:
		def, _ := spec.Default.(bool)
		answer, err := r.Prompter.Confirm(ctx, ConfirmRequest{Message: spec.Message, Default: def})
		if err != nil {
			return nil, promptErr(err)
		}
		return Boolean(answer), nil
	case descriptor.KindSelect:
		return r.promptSelect(ctx, spec)
	case descriptor.KindMultiSelect:
		return r.promptMultiSelect(ctx, spec)
	default:
		return nil, fmt.Errorf("%w: unknown parameter type %q", ErrInvalidValue, spec.Type)
	}
}

func (r *Resolver) promptText(ctx context.Context, spec descriptor.NamedParameter) (Value, error) {
	answer, err := r.Prompter.Text(ctx, TextRequest{
		Message:  spec.Message,
		Default:  Display(spec.Default),
		Required: spec.Required,
	})
	if err != nil {
		return nil, promptErr(err)
	}
	if spec.Required && answer == "" {
		return nil, fmt.Errorf("%w: a value is required", ErrInvalidValue)
	}
	return String(answer), nil
}

func (r *Resolver) promptNumber(ctx context.Context, spec descriptor.NamedParameter) (Value, error) {
	def := Display(spec.Default)
	answer, err := r.Prompter.Number(ctx, NumberRequest{
		Message:  spec.Message,
		Default:  def,
		Required: spec.Required,
		Integer:  spec.Type == descriptor.KindInteger,
	})
	if err != nil {
		return nil, promptErr(err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = def
	}
	if answer == "" {
		if spec.Required {
			return nil, fmt.Errorf("%w: a value is required", ErrInvalidValue)
		}
		return nil, nil
	}
	return Parse(spec.Type, answer)
}

func (r *Resolver) promptSelect(ctx context.Context, spec descriptor.NamedParameter) (Value, error) {
	options := choiceLabels(spec.Values)
	defaultIndex := 0
	if spec.Default != nil {
		if i := slices.Index(options, Display(spec.Default)); i >= 0 {
			defaultIndex = i
		}
	}

	idx, err := r.Prompter.Select(ctx, SelectRequest{
		Message:      spec.Message,
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return nil, promptErr(err)
	}
	if idx < 0 || idx >= len(spec.Values) {
		return nil, fmt.Errorf("%w: selection %d out of range", ErrInvalidValue, idx)
	}
	return FromTOML(spec.Values[idx])
}

func (r *Resolver) promptMultiSelect(ctx context.Context, spec descriptor.NamedParameter) (Value, error) {
	options := choiceLabels(spec.Values)

	var selected []int
	if defaults, ok := spec.Default.([]any); ok {
		for _, d := range defaults {
			if i := slices.Index(options, Display(d)); i >= 0 {
				selected = append(selected, i)
			}
		}
	}

	indices, err := r.Prompter.MultiSelect(ctx, SelectRequest{
		Message:  spec.Message,
		Options:  options,
		Selected: selected,
	})
	if err != nil {
		return nil, promptErr(err)
	}

	arr := make(Array, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(spec.Values) {
			return nil, fmt.Errorf("%w: selection %d out of range", ErrInvalidValue, idx)
		}
		v, err := FromTOML(spec.Values[idx])
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func (r *Resolver) resolveName(ctx context.Context, presetName string) (string, error) {
	if presetName != "" {
		if err := validation.IsValidProjectName(presetName); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return presetName, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.Prompter == nil {
		return "", fmt.Errorf("%w: project name not given and prompting is unavailable", ErrPrompt)
	}

	name, err := r.Prompter.Text(ctx, TextRequest{
		Message:  ProjectNameMessage,
		Required: true,
		Validate: validation.IsValidProjectName,
	})
	if err != nil {
		return "", fmt.Errorf("project name: %w", promptErr(err))
	}
	if err := validation.IsValidProjectName(name); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return name, nil
}

func (r *Resolver) warnUnusedPresets(specs []descriptor.NamedParameter) {
	declared := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		declared[spec.Name] = struct{}{}
	}
	for _, name := range slices.Sorted(maps.Keys(r.Presets)) {
		if _, ok := declared[name]; !ok {
			r.logger().Warn().Str("parameter", name).Msg("Ignoring value for a parameter the template does not declare")
		}
	}
}

func (r *Resolver) logger() *zerolog.Logger {
	if r.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return r.Logger
}

func presetValue(spec descriptor.NamedParameter, text string) (Value, error) {
	v, err := Parse(spec.Type, text)
	if err != nil {
		return nil, err
	}

	switch spec.Type {
	case descriptor.KindSelect:
		return matchChoice(spec.Values, text)
	case descriptor.KindMultiSelect:
		arr := Array{}
		for _, item := range v.(Array) {
			choice, err := matchChoice(spec.Values, item.String())
			if err != nil {
				return nil, err
			}
			arr = append(arr, choice)
		}
		return arr, nil
	}

	if spec.Required && v.String() == "" {
		return nil, fmt.Errorf("%w: a value is required", ErrInvalidValue)
	}
	return v, nil
}

func matchChoice(values []any, text string) (Value, error) {
	labels := choiceLabels(values)
	i := slices.Index(labels, text)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q is not one of [%s]", ErrInvalidValue, text, strings.Join(labels, ", "))
	}
	return FromTOML(values[i])
}

func choiceLabels(values []any) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = Display(v)
	}
	return labels
}

func promptErr(err error) error {
	if errors.Is(err, ErrPrompt) || errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPrompt, err)
}
