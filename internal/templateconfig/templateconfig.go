// Package templateconfig stores named template locations at ~/.scaffold/templates.yaml.
package templateconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/scaffold/internal/constants"
)

var (
	ErrUnknownAlias = errors.New("unknown template alias")
	ErrAliasExists  = errors.New("template alias already exists")
)

// Config is the content of the alias file.
type Config struct {
	Templates []Alias `yaml:"templates"`
}

// Alias maps a short name to a template location.
type Alias struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

func (c *Config) find(name string) int {
	return slices.IndexFunc(c.Templates, func(a Alias) bool { return a.Name == name })
}

type Store struct {
	logger *zerolog.Logger
	path   string
}

// NewStore returns a store backed by ~/.scaffold/templates.yaml.
func NewStore(logger *zerolog.Logger) (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}
	return NewStoreWithPath(logger, filepath.Join(homeDir, constants.ConfigDirName, constants.TemplatesFileName)), nil
}

// NewStoreWithPath returns a store backed by an explicit file.
func NewStoreWithPath(logger *zerolog.Logger, path string) *Store {
	return &Store{logger: logger, path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the alias file. A missing file yields an empty config.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Msg("No template aliases found at " + s.path)
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse template aliases: %w", err)
	}
	return &cfg, nil
}

// Save writes the alias file through a temporary file.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), constants.DefaultCachePerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal template aliases: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Add registers an alias. An existing alias is only replaced when replace is set.
func (s *Store) Add(name, location string, replace bool) error {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return errors.New("alias name and location are required")
	}

	cfg, err := s.Load()
	if err != nil {
		return err
	}

	if i := cfg.find(name); i >= 0 {
		if !replace {
			return fmt.Errorf("%w: %s -> %s", ErrAliasExists, name, cfg.Templates[i].Location)
		}
		cfg.Templates[i].Location = location
	} else {
		cfg.Templates = append(cfg.Templates, Alias{Name: name, Location: location})
	}

	s.logger.Debug().Str("alias", name).Str("location", location).Msg("Saving template alias")
	return s.Save(cfg)
}

func (s *Store) Remove(name string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	i := cfg.find(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAlias, name)
	}
	cfg.Templates = slices.Delete(cfg.Templates, i, i+1)
	return s.Save(cfg)
}

// Resolve returns the location registered for an alias, or the input unchanged when it is not one.
func (s *Store) Resolve(location string) (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	if i := cfg.find(location); i >= 0 {
		s.logger.Debug().Str("alias", location).Str("location", cfg.Templates[i].Location).Msg("Resolved template alias")
		return cfg.Templates[i].Location, nil
	}
	return location, nil
}
