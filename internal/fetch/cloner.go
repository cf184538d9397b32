package fetch

import (
	"context"
	"io"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// GitCloner performs shallow clones with go-git.
type GitCloner struct {
	// Progress receives the remote's progress output when set.
	Progress io.Writer
}

func (c *GitCloner) Clone(ctx context.Context, dir, url string, auth transport.AuthMethod) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Auth:     auth,
		Depth:    1,
		Progress: c.Progress,
	})
	return err
}
