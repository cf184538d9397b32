// Package descriptor loads the .scaffold.toml file found at the root of a template.
package descriptor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"github.com/smartcontractkit/scaffold/internal/constants"
	"github.com/smartcontractkit/scaffold/internal/validation"
)

var (
	ErrNotFound     = errors.New("template descriptor not found")
	ErrMalformed    = errors.New("template descriptor is malformed")
	ErrIncompatible = errors.New("template requires a different scaffold version")
)

// Kind is the declared type of a parameter.
type Kind string

const (
	KindString      Kind = "string"
	KindInteger     Kind = "integer"
	KindFloat       Kind = "float"
	KindBoolean     Kind = "boolean"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
)

// Template holds the [template] table.
type Template struct {
	Exclude  []string `toml:"exclude"`
	Notes    string   `toml:"notes"`
	Requires string   `toml:"requires" validate:"omitempty,semver_constraint"`
}

// Parameter is a single [parameters.<name>] table.
type Parameter struct {
	Message  string `toml:"message" validate:"required"`
	Required bool   `toml:"required"`
	Type     Kind   `toml:"type" validate:"required,oneof=string integer float boolean select multiselect"`
	Default  any    `toml:"default"`
	Values   []any  `toml:"values"`
}

// HasChoices reports whether the parameter is a select or multiselect.
func (p Parameter) HasChoices() bool {
	return p.Type == KindSelect || p.Type == KindMultiSelect
}

type NamedParameter struct {
	Name string
	Parameter
}

type Descriptor struct {
	Template   Template             `toml:"template"`
	Parameters map[string]Parameter `toml:"parameters"`

	undecoded []string
}

// Load reads the descriptor file from the given template root.
func Load(templateRoot string) (*Descriptor, error) {
	path := filepath.Join(templateRoot, constants.DescriptorFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes descriptor content. Unknown keys are kept aside and reported by Undecoded.
func Parse(data []byte) (*Descriptor, error) {
	d := &Descriptor{}
	md, err := toml.Decode(string(data), d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for _, key := range md.Undecoded() {
		d.undecoded = append(d.undecoded, key.String())
	}
	if d.Parameters == nil {
		d.Parameters = map[string]Parameter{}
	}
	return d, nil
}

// Exclude returns a copy of the exclusion patterns.
func (d *Descriptor) Exclude() []string {
	return slices.Clone(d.Template.Exclude)
}

func (d *Descriptor) Notes() string {
	return d.Template.Notes
}

// OrderedParameters returns the declared parameters sorted by name.
func (d *Descriptor) OrderedParameters() []NamedParameter {
	out := make([]NamedParameter, 0, len(d.Parameters))
	for name, p := range d.Parameters {
		p.Values = slices.Clone(p.Values)
		out = append(out, NamedParameter{Name: name, Parameter: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Undecoded returns the keys present in the file that the descriptor does not know about.
func (d *Descriptor) Undecoded() []string {
	return slices.Clone(d.undecoded)
}

// Validate checks the declared parameters before any prompt is shown.
// Empty choice lists are left to the resolver.
func (d *Descriptor) Validate() error {
	v, err := validation.NewValidator()
	if err != nil {
		return err
	}

	if err := v.Struct(d.Template); err != nil {
		return fmt.Errorf("%w: [template]: %s", ErrMalformed, v.ParseValidationErrors(err).Error())
	}

	for _, p := range d.OrderedParameters() {
		if err := validation.IsValidParameterName(p.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if err := v.Struct(p.Parameter); err != nil {
			return fmt.Errorf("%w: parameter %q: %s", ErrMalformed, p.Name, v.ParseValidationErrors(err).Error())
		}
	}
	return nil
}

// CheckRequires verifies the running version against the template's requires constraint.
// Versions that are not semantic versions, such as development builds, are not checked.
func (d *Descriptor) CheckRequires(version string) error {
	if d.Template.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(d.Template.Requires)
	if err != nil {
		return fmt.Errorf("%w: requires %q: %w", ErrMalformed, d.Template.Requires, err)
	}
	current, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}
	if !constraint.Check(current) {
		return fmt.Errorf("%w: template requires %s, running %s", ErrIncompatible, d.Template.Requires, version)
	}
	return nil
}
