package scaffold

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/upmkit/upmkit/internal/manifest"
)

// Result holds the outcome of writing a plan.
type Result struct {
	OutputDir string
	Files     []string // relative paths, in plan order; directories end in "/"
	Warnings  []string
}

// Generate plans cfg and writes it under dest/<resolved package name>.
func Generate(fsys afero.Fs, dest string, cfg Config, env Env) (*Result, error) {
	root := PackageRoot(cfg)
	if err := validateRoot(root); err != nil {
		return nil, err
	}

	result, err := Emit(fsys, filepath.Join(dest, root), Plan(cfg, env))
	if err != nil {
		return nil, err
	}

	if err := manifest.CheckVersion(cfg.Version); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}
	return result, nil
}

// Emit writes nodes under outputDir. The directory is created if needed and
// must be empty. The first write failure aborts and is returned. Written
// manifests are validated against their schemas; issues become warnings.
func Emit(fsys afero.Fs, outputDir string, nodes []Node) (*Result, error) {
	for _, n := range nodes {
		if err := validateRelPath(n.Path); err != nil {
			return nil, err
		}
	}

	if err := fsys.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := afero.ReadDir(fsys, outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	for _, n := range nodes {
		target := filepath.Join(outputDir, filepath.FromSlash(n.Path))

		if n.IsDir() {
			if err := fsys.MkdirAll(target, 0755); err != nil {
				return nil, fmt.Errorf("creating %s: %w", target, err)
			}
			result.Files = append(result.Files, strings.TrimSuffix(n.Path, "/")+"/")
			continue
		}

		if err := atomicWrite(fsys, target, []byte(n.Content), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		result.Files = append(result.Files, n.Path)

		if kind := manifest.KindForPath(n.Path); kind != "" {
			result.Warnings = append(result.Warnings, validateNode(kind, n)...)
		}
	}

	return result, nil
}

// validateNode checks a generated manifest and formats any issues.
func validateNode(kind string, n Node) []string {
	res, err := manifest.Validate(kind, []byte(n.Content))
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", n.Path, err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, n.Path+": "+issue.String())
	}
	return warnings
}

// atomicWrite writes data to a temp file beside path and renames it into place.
func atomicWrite(fsys afero.Fs, target string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(target)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	tmp, err := afero.TempFile(fsys, dir, ".upmkit-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = fsys.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = fsys.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// validateRelPath rejects node paths that are empty, absolute or escape the
// package root.
func validateRelPath(rel string) error {
	cleaned := path.Clean(rel)
	if cleaned == "" || cleaned == "." {
		return fmt.Errorf("invalid path %q: empty or current directory", rel)
	}
	if path.IsAbs(cleaned) || filepath.IsAbs(rel) {
		return fmt.Errorf("invalid path %q: must be relative", rel)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("invalid path %q: path traversal not allowed", rel)
	}
	return nil
}

// validateRoot rejects resolved package names that cannot be a folder name.
func validateRoot(root string) error {
	if root == "" || root == "." || root == ".." {
		return fmt.Errorf("package name resolves to %q; cannot use it as a folder name", root)
	}
	if strings.ContainsAny(root, `/\`) {
		return fmt.Errorf("package name %q must not contain path separators", root)
	}
	return nil
}
