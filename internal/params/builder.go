package params

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrSealed = errors.New("parameters are sealed")

// Builder collects values until Seal is called.
type Builder struct {
	values map[string]Value
	sealed bool
}

func NewBuilder() *Builder {
	return &Builder{values: map[string]Value{}}
}

func (b *Builder) Set(name string, v Value) error {
	if b.sealed {
		return fmt.Errorf("%w: cannot set %q", ErrSealed, name)
	}
	if v == nil {
		return fmt.Errorf("%w: nil value for %q", ErrInvalidValue, name)
	}
	b.values[name] = v
	return nil
}

func (b *Builder) Get(name string) (Value, bool) {
	v, ok := b.values[name]
	return v, ok
}

func (b *Builder) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Seal freezes the builder and returns the immutable parameter set.
func (b *Builder) Seal() *Resolved {
	b.sealed = true
	return &Resolved{values: maps.Clone(b.values)}
}

// Resolved is the immutable parameter set handed to the renderer.
type Resolved struct {
	values map[string]Value
}

func (r *Resolved) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the parameter names in sorted order.
func (r *Resolved) Names() []string {
	return slices.Sorted(maps.Keys(r.values))
}

func (r *Resolved) Len() int {
	return len(r.values)
}

// Context returns a fresh map of native values on every call.
func (r *Resolved) Context() map[string]any {
	ctx := make(map[string]any, len(r.values))
	for name, v := range r.values {
		ctx[name] = v.Native()
	}
	return ctx
}
