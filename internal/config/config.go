package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/upmkit/upmkit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyAuthorName   = "author.name"
	KeyAuthorEmail  = "author.email"
	KeyAuthorURL    = "author.url"
	KeyUnityVersion = "unity_version"
	KeyAssetsDir    = "assets_dir"
)

// Keys lists every key that `config set` accepts.
var Keys = []string{
	KeyAuthorName,
	KeyAuthorEmail,
	KeyAuthorURL,
	KeyUnityVersion,
	KeyAssetsDir,
}

// Dir returns the path to the config directory (~/.upmkit/). UPMKIT_HOME
// overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.upmkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(envReplacer)
	viper.AutomaticEnv()

	a := branding.DefaultAuthor()
	viper.SetDefault(KeyAuthorName, a.Name)
	viper.SetDefault(KeyAuthorEmail, a.Email)
	viper.SetDefault(KeyAuthorURL, a.URL)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is one of Keys.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Author returns the author block, config values layered over branding defaults.
func Author() branding.Author {
	return branding.Author{
		Name:  Get(KeyAuthorName),
		Email: Get(KeyAuthorEmail),
		URL:   Get(KeyAuthorURL),
	}
}

// Set stores value under key in the config file. Only what the file already
// holds plus the new key is written, so defaults and UPMKIT_* environment
// values never leak into it.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	file := viper.New()
	file.SetConfigFile(FilePath())
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("reading %s: %w", FilePath(), err)
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing %s: %w", FilePath(), err)
	}
	viper.Set(key, value)
	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
