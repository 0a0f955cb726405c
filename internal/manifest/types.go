package manifest

import "github.com/upmkit/upmkit/internal/branding"

// PackageInfo is everything BuildPackage needs to render package.json.
type PackageInfo struct {
	Name        string // resolved package name
	Version     string
	DisplayName string
	Description string
	HostVersion string // running Unity version, e.g. "2022.3.10f1"
	SampleOne   string
	SampleTwo   string
	Author      branding.Author
	URLs        branding.URLs
}

// Package is the parsed form of a package.json. Dependencies collapse
// duplicate placeholder keys into one entry.
type Package struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	DisplayName      string            `json:"displayName"`
	Description      string            `json:"description"`
	Unity            string            `json:"unity"`
	Dependencies     map[string]string `json:"dependencies"`
	DocumentationURL string            `json:"documentationUrl"`
	ChangelogURL     string            `json:"changelogUrl"`
	LicensesURL      string            `json:"licensesUrl"`
	Author           PackageAuthor     `json:"author"`
	Samples          []Sample          `json:"samples"`
}

// PackageAuthor is the author block of package.json.
type PackageAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	URL   string `json:"url"`
}

// Sample is one entry of the samples array.
type Sample struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Partition identifies which part of the package an assembly belongs to.
type Partition int

const (
	PartitionRuntime Partition = iota
	PartitionEditor
	PartitionTests
)

// String returns the partition's folder-style name.
func (p Partition) String() string {
	switch p {
	case PartitionRuntime:
		return "Runtime"
	case PartitionEditor:
		return "Editor"
	case PartitionTests:
		return "Tests"
	default:
		return "Unknown"
	}
}

// EditorOnly reports whether the partition compiles only for the editor.
func (p Partition) EditorOnly() bool {
	return p == PartitionEditor
}

// FrameworkReferences returns the engine assemblies a partition always
// references, after any runtime reference.
func (p Partition) FrameworkReferences() []string {
	switch p {
	case PartitionEditor:
		return []string{"UnityEditor.CoreModule", "UnityEditor.UIModule"}
	case PartitionTests:
		return []string{"UnityEngine.TestRunner", "UnityEditor.TestRunner"}
	default:
		return nil
	}
}

// AssemblyDefinition is an .asmdef document. Field order is the order written.
type AssemblyDefinition struct {
	Name                  string   `json:"name"`
	RootNamespace         string   `json:"rootNamespace"`
	IncludePlatforms      []string `json:"includePlatforms"`
	ExcludePlatforms      []string `json:"excludePlatforms"`
	AllowUnsafeCode       bool     `json:"allowUnsafeCode"`
	OverrideReferences    bool     `json:"overrideReferences"`
	PrecompiledReferences []string `json:"precompiledReferences"`
	AutoReferenced        bool     `json:"autoReferenced"`
	DefineConstraints     []string `json:"defineConstraints"`
	VersionDefines        []string `json:"versionDefines"`
	NoEngineReferences    bool     `json:"noEngineReferences"`
	References            []string `json:"references,omitempty"`
}

// Schema document kinds.
const (
	DocPackage  = "package"
	DocAssembly = "asmdef"
)
