// Package fetch turns a template location into a local directory, cloning remote repositories.
package fetch

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/rs/zerolog"

	"github.com/smartcontractkit/scaffold/internal/constants"
	"github.com/smartcontractkit/scaffold/internal/transformation"
)

var ErrFetch = errors.New("failed to fetch template")

// Cloner clones url into dir.
type Cloner interface {
	Clone(ctx context.Context, dir, url string, auth transport.AuthMethod) error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithCacheRoot sets the directory remote templates are cloned under. Defaults to os.TempDir().
func WithCacheRoot(dir string) Option {
	return func(f *Fetcher) {
		f.cacheRoot = dir
	}
}

func WithCloner(c Cloner) Option {
	return func(f *Fetcher) {
		f.cloner = c
	}
}

// WithPassphrase sets how the SSH key passphrase is obtained when one is needed.
func WithPassphrase(fn func() (string, error)) Option {
	return func(f *Fetcher) {
		f.passphrase = fn
	}
}

// WithSSHKeyFile overrides the private key used for SSH remotes.
func WithSSHKeyFile(path string) Option {
	return func(f *Fetcher) {
		f.sshKeyFile = path
	}
}

type Fetcher struct {
	logger     *zerolog.Logger
	cacheRoot  string
	cloner     Cloner
	passphrase func() (string, error)
	sshKeyFile string
}

func New(logger *zerolog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		logger:    logger,
		cacheRoot: os.TempDir(),
		cloner:    &GitCloner{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsRemote reports whether location names a git repository to clone.
func IsRemote(location string) bool {
	return strings.HasSuffix(location, constants.RemoteTemplateSuffix)
}

// CacheDir returns the clone directory for a remote location.
func CacheDir(root, location string) string {
	sum := md5.Sum([]byte(location))
	return filepath.Join(root, hex.EncodeToString(sum[:]))
}

// Fetch returns the local template root for location. Remote locations are cloned into a fresh
// cache directory on every call; local locations must be existing directories.
func (f *Fetcher) Fetch(ctx context.Context, location string, passphraseNeeded bool) (string, error) {
	if location == "" {
		return "", fmt.Errorf("%w: template location is empty", ErrFetch)
	}
	if IsRemote(location) {
		return f.clone(ctx, location, passphraseNeeded)
	}
	return local(location)
}

func local(location string) (string, error) {
	abs, err := transformation.ResolveDirectory(location)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, location, err)
	}
	return abs, nil
}

func (f *Fetcher) clone(ctx context.Context, location string, passphraseNeeded bool) (string, error) {
	dir := CacheDir(f.cacheRoot, location)

	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("%w: failed to clear %s: %w", ErrFetch, dir, err)
	}
	if err := os.MkdirAll(dir, constants.DefaultCachePerm); err != nil {
		return "", fmt.Errorf("%w: failed to create %s: %w", ErrFetch, dir, err)
	}

	auth, err := f.authFor(location, passphraseNeeded)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, location, err)
	}

	f.logger.Debug().Str("location", location).Str("dir", dir).Msg("Cloning template")
	if err := f.cloner.Clone(ctx, dir, location, auth); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, location, err)
	}
	return dir, nil
}
