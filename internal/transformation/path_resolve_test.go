package transformation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/internal/testutil"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cwd := t.TempDir()
	testutil.ChangeWorkingDirectory(t, cwd)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		expects string
	}{
		{"Empty input stays empty", "", ""},
		{"Home directory", "~", home},
		{"Path under home", "~/projects/demo", filepath.Join(home, "projects", "demo")},
		{"Relative path", "out/../build", filepath.Join(cwd, "build")},
		{"Absolute path is cleaned", "/srv//templates/", "/srv/templates"},
		{"Tilde inside a name is literal", "~user", filepath.Join(cwd, "~user")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expects, got)
		})
	}
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{"file.txt": "x"})

	got, err := ResolveDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = ResolveDirectory(filepath.Join(dir, "file.txt"))
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = ResolveDirectory(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ResolveDirectory("")
	assert.Error(t, err)
}
