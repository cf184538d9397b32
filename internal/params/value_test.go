package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/internal/descriptor"
)

func TestFromTOML(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Value
	}{
		{"string", "go", String("go")},
		{"integer", int64(3), Integer(3)},
		{"float", 1.5, Float(1.5)},
		{"boolean", true, Boolean(true)},
		{"array", []any{"a", int64(2)}, Array{String("a"), Integer(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTOML(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := FromTOML(map[string]any{"a": 1})
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		kind    descriptor.Kind
		text    string
		want    Value
		wantErr bool
	}{
		{descriptor.KindString, "hello", String("hello"), false},
		{descriptor.KindInteger, " 42 ", Integer(42), false},
		{descriptor.KindInteger, "4.2", nil, true},
		{descriptor.KindFloat, "4.25", Float(4.25), false},
		{descriptor.KindFloat, "abc", nil, true},
		{descriptor.KindBoolean, "true", Boolean(true), false},
		{descriptor.KindBoolean, "yes please", nil, true},
		{descriptor.KindSelect, "rust", String("rust"), false},
		{descriptor.KindMultiSelect, "a, b,,c", Array{String("a"), String("b"), String("c")}, false},
		{descriptor.Kind("date"), "x", nil, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.text, func(t *testing.T) {
			got, err := Parse(tt.kind, tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNativeAndString(t *testing.T) {
	arr := Array{String("a"), Integer(1), Boolean(false), Float(0.5)}
	assert.Equal(t, []any{"a", int64(1), false, 0.5}, arr.Native())
	assert.Equal(t, "a,1,false,0.5", arr.String())
	assert.Equal(t, "", Display(nil))
	assert.Equal(t, "3", Display(int64(3)))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Set("lang", String("go")))
	require.NoError(t, b.Set("name", String("Widget")))
	assert.True(t, b.Has("lang"))
	assert.Error(t, b.Set("nil", nil))

	resolved := b.Seal()
	assert.ErrorIs(t, b.Set("target_dir", String("/tmp")), ErrSealed)

	assert.Equal(t, []string{"lang", "name"}, resolved.Names())
	assert.Equal(t, 2, resolved.Len())
	v, ok := resolved.Get("lang")
	require.True(t, ok)
	assert.Equal(t, String("go"), v)

	ctx := resolved.Context()
	ctx["lang"] = "rust"
	assert.Equal(t, "go", resolved.Context()["lang"])
}
