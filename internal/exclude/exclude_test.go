package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	m, err := Compile([]string{"*.tmp", "target/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp", "target/**"}, m.Patterns())

	_, err = Compile([]string{"ok", "[unterminated"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadPattern)
	assert.Contains(t, err.Error(), "[unterminated")
}

func TestExcludes(t *testing.T) {
	m, err := Compile([]string{"*.tmp", "target/**", "docs"})
	require.NoError(t, err)

	tests := []struct {
		rel  string
		want bool
	}{
		{"a.txt", false},
		{"b.tmp", true},
		{"nested/deep/c.tmp", true},
		{"target/out.bin", true},
		{"target", false},
		{"docs", true},
		{"docs/readme.md", false},
		{"src/docs", false},
		{".git", true},
		{".git/config", true},
		{"sub/.git/HEAD", true},
		{".github/workflows/ci.yml", false},
		{".scaffold.toml", true},
		{"./.scaffold.toml", true},
		{"sub/.scaffold.toml", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Excludes(tt.rel))
		})
	}
}

func TestExcludes_RecursivePrefixMatchesRoot(t *testing.T) {
	m, err := Compile([]string{"**/*.log", "**/node_modules", "src/**/gen"})
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.log", "**/node_modules", "src/**/gen"}, m.Patterns())

	tests := []struct {
		rel  string
		want bool
	}{
		{"out.log", true},
		{"src/out.log", true},
		{"a/b/c/out.log", true},
		{"node_modules", true},
		{"web/node_modules", true},
		{"src/gen", true},
		{"src/api/v1/gen", true},
		{"gen", false},
		{"out.txt", false},
		{"node_modules_backup", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Excludes(tt.rel))
		})
	}
}

func TestExpandRecursive(t *testing.T) {
	assert.Equal(t, []string{"*.tmp"}, expandRecursive("*.tmp"))
	assert.Equal(t, []string{"**/*.log", "*.log"}, expandRecursive("**/*.log"))
	assert.Equal(t, []string{"a/**/b", "a/b"}, expandRecursive("a/**/b"))
	assert.Equal(t, []string{"x**/y"}, expandRecursive("x**/y"))
	assert.ElementsMatch(t, []string{"**/a/**/b", "**/a/b", "a/**/b", "a/b"}, expandRecursive("**/a/**/b"))
}

func TestExcludes_NoPatterns(t *testing.T) {
	m, err := Compile(nil)
	require.NoError(t, err)
	assert.False(t, m.Excludes("anything.tmp"))
	assert.True(t, m.Excludes(".git/objects"))

	var zero *Matcher
	assert.True(t, zero.Excludes(".scaffold.toml"))
	assert.False(t, zero.Excludes("main.go"))
	assert.Nil(t, zero.Patterns())
}
