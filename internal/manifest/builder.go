package manifest

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/package.json.tmpl
var templateFS embed.FS

// DefaultHostCompat is the minimum Unity version written when the host
// version string has no leading major.minor.
const DefaultHostCompat = "2020.3"

// SamplesDir is the folder holding samples. The trailing tilde keeps Unity
// from importing it as regular assets.
const SamplesDir = "Samples~"

var hostCompatPattern = regexp.MustCompile(`^(\d+\.\d+)`)

var (
	packageTmpl      *template.Template
	packageTmplOnce  sync.Once
	packageTmplError error
)

// HostCompat extracts the leading major.minor of a Unity version string,
// e.g. "2022.3.10f1" → "2022.3". Unmatched input yields DefaultHostCompat.
func HostCompat(hostVersion string) string {
	m := hostCompatPattern.FindStringSubmatch(hostVersion)
	if m == nil {
		return DefaultHostCompat
	}
	return m[1]
}

// SamplePath returns the manifest path of a sample folder.
func SamplePath(sample string) string {
	return SamplesDir + "/" + sample
}

func getPackageTemplate() (*template.Template, error) {
	packageTmplOnce.Do(func() {
		packageTmpl, packageTmplError = template.New("package.json.tmpl").
			Funcs(template.FuncMap{"json": jsonString}).
			ParseFS(templateFS, "templates/package.json.tmpl")
		if packageTmplError != nil {
			packageTmplError = fmt.Errorf("parsing package template: %w", packageTmplError)
		}
	})
	return packageTmpl, packageTmplError
}

// BuildPackage renders package.json. Fields are written in a fixed order
// that downstream tools rely on. The dependencies block is a placeholder
// meant to be edited by hand.
func BuildPackage(info PackageInfo) (string, error) {
	tmpl, err := getPackageTemplate()
	if err != nil {
		return "", err
	}

	data := struct {
		PackageInfo
		Unity   string
		Samples []Sample
	}{
		PackageInfo: info,
		Unity:       HostCompat(info.HostVersion),
		Samples: []Sample{
			{DisplayName: info.SampleOne, Description: info.Description, Path: SamplePath(info.SampleOne)},
			{DisplayName: info.SampleTwo, Description: info.Description, Path: SamplePath(info.SampleTwo)},
		},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing package template: %w", err)
	}
	return buf.String(), nil
}

// NewAssembly returns the descriptor for a partition. references lists other
// partitions this one depends on; the partition's framework references are
// appended after them.
func NewAssembly(name string, p Partition, references []string) AssemblyDefinition {
	refs := make([]string, 0, len(references)+2)
	refs = append(refs, references...)
	refs = append(refs, p.FrameworkReferences()...)

	include := []string{}
	if p.EditorOnly() {
		include = []string{"Editor"}
	}

	return AssemblyDefinition{
		Name:                  name,
		RootNamespace:         "",
		References:            refs,
		IncludePlatforms:      include,
		ExcludePlatforms:      []string{},
		AllowUnsafeCode:       false,
		OverrideReferences:    false,
		PrecompiledReferences: []string{},
		AutoReferenced:        true,
		DefineConstraints:     []string{},
		VersionDefines:        []string{},
		NoEngineReferences:    false,
	}
}

// BuildAssembly renders an .asmdef document. The references field is omitted
// when the partition has no references at all.
func BuildAssembly(name string, p Partition, references []string) (string, error) {
	asm := NewAssembly(name, p, references)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(asm); err != nil {
		return "", fmt.Errorf("encoding assembly definition %s: %w", name, err)
	}
	return buf.String(), nil
}

// jsonString quotes s as a JSON string literal without HTML escaping.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
