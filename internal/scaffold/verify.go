package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/upmkit/upmkit/internal/manifest"
	"github.com/upmkit/upmkit/internal/names"
)

// Check is the outcome of one verification step.
type Check struct {
	Subject string // relative path or "package"
	OK      bool
	Message string
}

// Report collects the checks run by Verify.
type Report struct {
	Root   string
	Checks []Check
}

// Failed reports whether any check failed.
func (r *Report) Failed() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return true
		}
	}
	return false
}

func (r *Report) pass(subject, msg string) {
	r.Checks = append(r.Checks, Check{Subject: subject, OK: true, Message: msg})
}

func (r *Report) fail(subject, msg string) {
	r.Checks = append(r.Checks, Check{Subject: subject, OK: false, Message: msg})
}

// Verify inspects an existing package directory: package.json and every
// .asmdef must pass their schemas, package-local assembly references must
// resolve, and every sample path must exist.
func Verify(fsys afero.Fs, root string) (*Report, error) {
	report := &Report{Root: root}

	pkgPath := filepath.Join(root, ManifestFile)
	pkgData, err := afero.ReadFile(fsys, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pkgPath, err)
	}
	verifyDocument(report, manifest.DocPackage, ManifestFile, pkgData)

	pkg, err := manifest.DecodePackage(pkgData)
	if err != nil {
		report.fail(ManifestFile, fmt.Sprintf("cannot decode: %v", err))
		return report, nil
	}
	if err := manifest.CheckVersion(pkg.Version); err != nil {
		report.pass(ManifestFile, "warning: "+err.Error())
	}

	assemblies := map[string]string{} // assembly name → relative path
	undecodable := map[string]bool{}  // file stems of .asmdef files that failed to decode
	var refs []struct{ from, to string }

	err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".asmdef") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("locating %s under %s: %w", path, root, err)
		}
		rel = filepath.ToSlash(rel)

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		verifyDocument(report, manifest.DocAssembly, rel, data)

		asm, err := manifest.DecodeAssembly(data)
		if err != nil {
			report.fail(rel, fmt.Sprintf("cannot decode: %v", err))
			undecodable[strings.TrimSuffix(filepath.Base(rel), ".asmdef")] = true
			return nil
		}
		assemblies[asm.Name] = rel
		for _, ref := range asm.References {
			refs = append(refs, struct{ from, to string }{rel, ref})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, r := range refs {
		if !isLocalAssembly(pkg.Name, r.to) || undecodable[r.to] {
			continue
		}
		if _, ok := assemblies[r.to]; !ok {
			report.fail(r.from, fmt.Sprintf("references %s, which is not defined in this package", r.to))
		}
	}

	for _, s := range pkg.Samples {
		isDir, err := afero.IsDir(fsys, filepath.Join(root, filepath.FromSlash(s.Path)))
		if err != nil || !isDir {
			report.fail(ManifestFile, fmt.Sprintf("sample %q: directory %s is missing", s.DisplayName, s.Path))
		}
	}

	if !report.Failed() {
		found := make([]string, 0, len(assemblies))
		for name := range assemblies {
			found = append(found, name)
		}
		sort.Strings(found)
		report.pass("package", fmt.Sprintf("%s (v%s), assemblies: %s", pkg.Name, pkg.Version, strings.Join(found, ", ")))
	}
	return report, nil
}

func verifyDocument(report *Report, kind, rel string, data []byte) {
	res, err := manifest.Validate(kind, data)
	if err != nil {
		report.fail(rel, err.Error())
		return
	}
	if res.Valid {
		report.pass(rel, "valid "+kind)
		return
	}
	for _, issue := range res.Issues {
		report.fail(rel, issue.String())
	}
}

// isLocalAssembly reports whether ref names one of the package's own partitions.
func isLocalAssembly(pkgName, ref string) bool {
	for _, name := range names.AssemblyNames(pkgName) {
		if ref == name {
			return true
		}
	}
	return false
}
