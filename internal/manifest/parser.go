package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DecodePackage decodes package.json content. Duplicate keys, such as the
// dependency placeholders, are accepted; the last one wins.
func DecodePackage(data []byte) (*Package, error) {
	return decode[Package](data, DocPackage)
}

// DecodeAssembly decodes .asmdef content.
func DecodeAssembly(data []byte) (*AssemblyDefinition, error) {
	return decode[AssemblyDefinition](data, DocAssembly)
}

func decode[T any](data []byte, kind string) (*T, error) {
	var m T
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}
	return &m, nil
}

// CheckVersion reports whether version is valid semver. Package versions
// that fail this check are still written; callers surface the error as a
// warning.
func CheckVersion(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("version %q is not valid semver: %w", version, err)
	}
	return nil
}
