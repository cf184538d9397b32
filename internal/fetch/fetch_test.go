package fetch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/internal/testutil"
)

type fakeCloner struct {
	calls []string
	auth  transport.AuthMethod
	err   error
}

func (c *fakeCloner) Clone(_ context.Context, dir, url string, auth transport.AuthMethod) error {
	c.calls = append(c.calls, url)
	c.auth = auth
	if c.err != nil {
		return c.err
	}
	return os.WriteFile(filepath.Join(dir, ".scaffold.toml"), []byte("[template]\n"), 0o600)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://github.com/org/tpl.git"))
	assert.True(t, IsRemote("git@github.com:org/tpl.git"))
	assert.False(t, IsRemote("./templates/go"))
	assert.False(t, IsRemote("https://github.com/org/tpl"))
}

func TestCacheDir(t *testing.T) {
	a := CacheDir("/cache", "https://github.com/org/a.git")
	b := CacheDir("/cache", "https://github.com/org/b.git")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CacheDir("/cache", "https://github.com/org/a.git"))
	assert.Equal(t, "/cache", filepath.Dir(a))
	assert.Len(t, filepath.Base(a), 32)
}

func TestFetch_Local(t *testing.T) {
	dir := t.TempDir()
	f := New(testutil.NewTestLogger(), WithCloner(&fakeCloner{err: errors.New("must not clone")}))

	got, err := f.Fetch(context.Background(), dir, false)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = f.Fetch(context.Background(), filepath.Join(dir, "missing"), false)
	assert.ErrorIs(t, err, ErrFetch)

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = f.Fetch(context.Background(), file, false)
	assert.ErrorIs(t, err, ErrFetch)

	_, err = f.Fetch(context.Background(), "", false)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetch_Remote(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	cache := t.TempDir()
	cloner := &fakeCloner{}
	f := New(testutil.NewTestLogger(), WithCacheRoot(cache), WithCloner(cloner))

	location := "https://github.com/org/tpl.git"
	dir := CacheDir(cache, location)
	testutil.WriteTree(t, dir, map[string]string{"stale.txt": "old"})

	got, err := f.Fetch(context.Background(), location, false)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.Equal(t, []string{location}, cloner.calls)
	assert.Nil(t, cloner.auth)
	assert.Equal(t, map[string]string{".scaffold.toml": "[template]\n"}, testutil.ReadTree(t, dir))
}

func TestFetch_RemoteFailure(t *testing.T) {
	f := New(testutil.NewTestLogger(), WithCacheRoot(t.TempDir()), WithCloner(&fakeCloner{err: errors.New("repository not found")}))

	_, err := f.Fetch(context.Background(), "https://github.com/org/missing.git", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "repository not found")
}

func TestAuthFor(t *testing.T) {
	t.Run("https with token", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "secret")
		f := New(testutil.NewTestLogger())

		auth, err := f.authFor("https://github.com/org/tpl.git", false)
		require.NoError(t, err)
		basic, ok := auth.(*githttp.BasicAuth)
		require.True(t, ok)
		assert.Equal(t, "secret", basic.Password)
	})

	t.Run("https without token", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		auth, err := New(testutil.NewTestLogger()).authFor("https://github.com/org/tpl.git", false)
		require.NoError(t, err)
		assert.Nil(t, auth)
	})

	t.Run("ssh with passphrase and missing key", func(t *testing.T) {
		asked := false
		f := New(testutil.NewTestLogger(),
			WithSSHKeyFile(filepath.Join(t.TempDir(), "id_rsa")),
			WithPassphrase(func() (string, error) {
				asked = true
				return "pass", nil
			}),
		)

		_, err := f.authFor("git@github.com:org/tpl.git", true)
		require.Error(t, err)
		assert.True(t, asked)
		assert.Contains(t, err.Error(), "failed to load SSH key")
	})

	t.Run("ssh with passphrase but no prompt", func(t *testing.T) {
		f := New(testutil.NewTestLogger(), WithSSHKeyFile(filepath.Join(t.TempDir(), "id_rsa")))
		_, err := f.authFor("git@github.com:org/tpl.git", true)
		assert.Error(t, err)
	})

	t.Run("ssh without agent or key", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "")
		f := New(testutil.NewTestLogger(), WithSSHKeyFile(filepath.Join(t.TempDir(), "id_rsa")))
		auth, err := f.authFor("git@github.com:org/tpl.git", false)
		require.NoError(t, err)
		assert.Nil(t, auth)
	})
}
