package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/internal/params"
)

func resolved(t *testing.T, values map[string]params.Value) *params.Resolved {
	t.Helper()
	b := params.NewBuilder()
	for k, v := range values {
		require.NoError(t, b.Set(k, v))
	}
	return b.Seal()
}

func TestEngine_Render(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	p := resolved(t, map[string]params.Value{
		"name":     params.String("My Widget"),
		"count":    params.Integer(3),
		"features": params.Array{params.String("cli"), params.String("http")},
		"html":     params.String("<b>&</b>"),
	})

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"plain text", "no tags here", "no tags here"},
		{"variable", "Hello {{name}}", "Hello My Widget"},
		{"variable with spaces", "Hello {{ name }}!", "Hello My Widget!"},
		{"integer", "{{ count }} items", "3 items"},
		{"kebab", "{{ name|kebab_case }}", "my-widget"},
		{"snake", "{{ name|snake_case }}", "my_widget"},
		{"camel", "{{ name|camel_case }}", "myWidget"},
		{"pascal", "{{ name|pascal_case }}", "MyWidget"},
		{"upper snake", "{{ name|upper_snake_case }}", "MY_WIDGET"},
		{"range", "{% for i in count|range %}{{ i }}{% endfor %}", "012"},
		{"range with start", "{% for i in count|range:1 %}{{ i }}{% endfor %}", "12"},
		{"loop over array", "{% for f in features %}[{{ f }}]{% endfor %}", "[cli][http]"},
		{"conditional", "{% if \"http\" in features %}yes{% endif %}", "yes"},
		{"no escaping", "{{ html }}", "<b>&</b>"},
		{"undefined is empty", "[{{ missing }}]", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.tmpl, p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_RenderIsDeterministic(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	p := resolved(t, map[string]params.Value{"name": params.String("Widget"), "count": params.Integer(2)})

	tmpl := "{{ name }}-{% for i in count|range %}{{ i }}{% endfor %}"
	first, err := e.Render(tmpl, p)
	require.NoError(t, err)
	for range 10 {
		again, err := e.Render(tmpl, p)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEngine_RenderErrors(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	p := resolved(t, map[string]params.Value{"name": params.String("Widget")})

	_, err = e.Render("{% if %}", p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)

	_, err = e.Render("{{ name|range }}", p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)

	_, err = Named(e, "src/{{ name.txt", "{{ name", p)
	require.Error(t, err)
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "src/{{ name.txt", rerr.Name)
	assert.Contains(t, err.Error(), "src/{{ name.txt")
}

func TestEngine_HashBraceStartsComment(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	p := resolved(t, map[string]params.Value{"name": params.String("Widget")})

	_, err = e.Render("echo \"args: ${#ARGS[@]}\"\necho {{ name }}\n", p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)

	out, err := e.Render("{% verbatim %}echo \"args: ${#ARGS[@]}\"{% endverbatim %}\necho {{ name }}\n", p)
	require.NoError(t, err)
	assert.Equal(t, "echo \"args: ${#ARGS[@]}\"\necho Widget\n", out)

	out, err = e.Render("a{# note #}b", p)
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestEngine_Include(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "header.txt"), []byte("// {{ name }}"), 0o600))

	e, err := New(WithBaseDir(dir))
	require.NoError(t, err)

	got, err := e.Render(`{% include "header.txt" %}`, resolved(t, map[string]params.Value{"name": params.String("Widget")}))
	require.NoError(t, err)
	assert.Equal(t, "// Widget", got)
}
