package fetch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/smartcontractkit/scaffold/internal/constants"
)

// authFor picks credentials by transport. SSH remotes use the agent unless a passphrase
// is needed, in which case the private key file is decrypted with it. HTTP remotes use
// GITHUB_TOKEN when set.
func (f *Fetcher) authFor(location string, passphraseNeeded bool) (transport.AuthMethod, error) {
	ep, err := transport.NewEndpoint(location)
	if err != nil {
		return nil, err
	}

	switch ep.Protocol {
	case "ssh":
		user := ep.User
		if user == "" {
			user = constants.DefaultSSHUser
		}
		if passphraseNeeded {
			return f.keyFileAuth(user, true)
		}
		agent, err := gitssh.NewSSHAgentAuth(user)
		if err == nil {
			return agent, nil
		}
		f.logger.Debug().Err(err).Msg("SSH agent unavailable, trying key file")
		if _, err := os.Stat(f.keyFile()); err == nil {
			return f.keyFileAuth(user, false)
		}
		return nil, nil

	case "http", "https":
		if token := os.Getenv(constants.GitHubTokenEnvVar); token != "" {
			return &githttp.BasicAuth{Username: constants.GitHubTokenAccount, Password: token}, nil
		}
		return nil, nil

	default:
		return nil, nil
	}
}

func (f *Fetcher) keyFileAuth(user string, withPassphrase bool) (transport.AuthMethod, error) {
	var password string
	if withPassphrase {
		if f.passphrase == nil {
			return nil, errors.New("a passphrase is required but cannot be prompted for")
		}
		p, err := f.passphrase()
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		password = p
	}

	keys, err := gitssh.NewPublicKeysFromFile(user, f.keyFile(), password)
	if err != nil {
		return nil, fmt.Errorf("failed to load SSH key %s: %w", f.keyFile(), err)
	}
	return keys, nil
}

func (f *Fetcher) keyFile() string {
	if f.sshKeyFile != "" {
		return f.sshKeyFile
	}
	if env := os.Getenv(constants.SSHKeyEnvVar); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.DefaultSSHKeyFile
	}
	return filepath.Join(home, ".ssh", constants.DefaultSSHKeyFile)
}
