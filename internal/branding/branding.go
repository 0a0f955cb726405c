// Package branding provides compile-time identity values for the CLI and the
// fixed metadata stamped into every generated package.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	NamespacePrefix string `yaml:"namespace_prefix"`
	Author          Author `yaml:"author"`
	URLs            URLs   `yaml:"urls"`
}

// Author is the publisher block written into generated manifests.
type Author struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	URL   string `yaml:"url"`
}

// URLs are the documentation links written into generated manifests.
type URLs struct {
	Documentation string `yaml:"documentation"`
	Changelog     string `yaml:"changelog"`
	Licenses      string `yaml:"licenses"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:         "upmkit",
			DisplayName:     "upmkit",
			Description:     "Starter package generator for Unity Package Manager packages",
			HomeDir:         ".upmkit",
			EnvPrefix:       "UPMKIT",
			NamespacePrefix: "SoggyInkGames.",
			Author: Author{
				Name:  "SOGGY INK GAMES",
				Email: "soggyinkgames@gmail.com",
				URL:   "https://www.soggyinkgames.com/form",
			},
			URLs: URLs{
				Documentation: "https://example.com/",
				Changelog:     "https://example.com/changelog.html/",
				Licenses:      "https://example.com/licensing.html/",
			},
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "upmkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".upmkit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "UPMKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// NamespacePrefix returns the literal prepended to the sanitized display name
// to form the root C# namespace (e.g., "SoggyInkGames.").
func NamespacePrefix() string { load(); return defaults.NamespacePrefix }

// DefaultAuthor returns the author block used when config does not override it.
func DefaultAuthor() Author { load(); return defaults.Author }

// DefaultURLs returns the documentation links used in generated manifests.
func DefaultURLs() URLs { load(); return defaults.URLs }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "UPMKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
