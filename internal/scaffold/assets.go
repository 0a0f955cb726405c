package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/upmkit/upmkit/internal/branding"
)

//go:embed assets/*.txt
var assetFS embed.FS

// Asset file names, both in the embedded set and in an override directory.
const (
	LicenseAsset       = "LICENSE.txt"
	GitIgnoreAsset     = "gitignore.txt"
	GitAttributesAsset = "gitattributes.txt"
)

// Env holds the inputs Plan takes from the environment rather than from the
// user's Config. The three text blobs are copied into the package verbatim.
type Env struct {
	License       string
	GitIgnore     string
	GitAttributes string
	HostVersion   string // Unity version, e.g. "2022.3.10f1"; may be empty
	Author        branding.Author
	URLs          branding.URLs
}

func (e *Env) blobs() []struct {
	name string
	dst  *string
} {
	return []struct {
		name string
		dst  *string
	}{
		{LicenseAsset, &e.License},
		{GitIgnoreAsset, &e.GitIgnore},
		{GitAttributesAsset, &e.GitAttributes},
	}
}

// DefaultEnv returns the embedded blobs and the branding author block.
func DefaultEnv() (Env, error) {
	e := Env{
		Author: branding.DefaultAuthor(),
		URLs:   branding.DefaultURLs(),
	}
	for _, b := range e.blobs() {
		data, err := assetFS.ReadFile("assets/" + b.name)
		if err != nil {
			return e, fmt.Errorf("reading embedded asset %s: %w", b.name, err)
		}
		*b.dst = string(data)
	}
	return e, nil
}

// LoadEnv is DefaultEnv with blobs replaced by files found in dir. Files
// missing from dir keep the embedded copy; any other read failure is
// returned. An empty dir means embedded blobs only.
func LoadEnv(dir string) (Env, error) {
	e, err := DefaultEnv()
	if err != nil || dir == "" {
		return e, err
	}

	for _, b := range e.blobs() {
		data, err := os.ReadFile(filepath.Join(dir, b.name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return e, fmt.Errorf("reading asset %s: %w", b.name, err)
		}
		*b.dst = string(data)
	}
	return e, nil
}
