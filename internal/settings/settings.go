package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/smartcontractkit/scaffold/internal/constants"
)

// Config names (YAML keys in ~/.scaffold/config.yaml)
const (
	CacheDirSettingName  = "cache-dir"
	SSHKeySettingName    = "ssh-key"
	TargetDirSettingName = "target-directory"
	LogLevelSettingName  = "log-level"
)

const loadEnvErrorMessage = "Not able to load configuration from .env file, skipping this optional step.\n" +
	"Environment variables must be exported for the CLI tool to read them.\n" +
	"If .env location is not provided via CLI flag, the closest .env file in the current directory or its parents is used."

// Settings holds the values resolved from flags, environment and the optional config file.
type Settings struct {
	CacheDir        string
	SSHKeyFile      string
	TargetDirectory string
	LogLevel        string
}

// New loads the .env file, binds SCAFFOLD_* environment variables and merges the optional
// config file into v, then reads the resulting settings.
func New(logger *zerolog.Logger, v *viper.Viper) (*Settings, error) {
	envPath := v.GetString(Flags.CliEnvFile.Name)

	if err := LoadEnv(envPath); err != nil {
		// .env file is optional, so we log it as a debug message
		logger.Debug().Err(err).Msg(loadEnvErrorMessage)
	}

	BindEnv(v)

	if err := LoadConfigFile(logger, v); err != nil {
		return nil, err
	}

	s := &Settings{
		CacheDir:        v.GetString(CacheDirSettingName),
		SSHKeyFile:      v.GetString(SSHKeySettingName),
		TargetDirectory: v.GetString(TargetDirSettingName),
		LogLevel:        v.GetString(LogLevelSettingName),
	}
	if s.CacheDir == "" {
		s.CacheDir = os.TempDir()
	}

	logger.Debug().Str("cache", s.CacheDir).Str("target", s.TargetDirectory).Msg("Settings loaded")
	return s, nil
}

// BindEnv maps SCAFFOLD_* variables onto setting names, so SCAFFOLD_TARGET_DIRECTORY
// sets target-directory.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// LoadConfigFile merges ~/.scaffold/config.yaml into v when it exists.
func LoadConfigFile(logger *zerolog.Logger, v *viper.Viper) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Debug().Err(err).Msg("No home directory, skipping config file")
		return nil
	}

	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType(constants.ConfigFileType)
	v.AddConfigPath(filepath.Join(homeDir, constants.ConfigDirName))

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Debug().Msg("No config file found, using defaults")
			return nil
		}
		return fmt.Errorf("error loading config file: %w", err)
	}

	logger.Debug().Str("file", v.ConfigFileUsed()).Msg("Loaded config file")
	return nil
}

func LoadEnv(envPath string) error {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading file from %s: %w", envPath, err)
			}
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}

	foundEnvPath, err := findEnvFile(cwd, constants.DefaultEnvFileName)
	if err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}

	if err := godotenv.Load(foundEnvPath); err != nil {
		return fmt.Errorf("error loading file from %s: %w", foundEnvPath, err)
	}
	return nil
}

func findEnvFile(startDir, fileName string) (string, error) {
	dir := startDir

	for {
		filePath := filepath.Join(dir, fileName)

		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return filePath, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break // Reached the root directory.
		}
		dir = parentDir
	}
	return "", fmt.Errorf("file %s not found in any parent directory starting from %s", fileName, startDir)
}
