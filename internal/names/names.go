// Package names derives every identifier a generated package needs from the
// raw package identifier and display name: the sanitized display name, the
// resolved package name, one assembly name per partition and the C# namespaces.
//
// All functions are total. Empty input yields degenerate but usable names.
package names

import (
	"strings"

	"github.com/upmkit/upmkit/internal/branding"
)

// Marker is the placeholder in a package identifier that is replaced with the
// sanitized display name, e.g. "com.acme.pkg-[]".
const Marker = "[]"

// Partition assembly suffixes.
const (
	RuntimeSuffix = ".runtime"
	EditorSuffix  = ".editor"
	TestsSuffix   = ".tests"
)

// Resolved holds the names computed once per generation run.
type Resolved struct {
	Sanitized string // display name without spaces, e.g. "MyTool"
	Package   string // identifier with the marker resolved
	Runtime   string // Package + ".runtime"
	Editor    string // Package + ".editor"
	Tests     string // Package + ".tests"
	Namespace string // namespace prefix + Sanitized
}

// Derive computes the resolved names for a package.
func Derive(identifier, displayName string) Resolved {
	sanitized := Sanitize(displayName)
	pkg := Resolve(identifier, sanitized)
	return Resolved{
		Sanitized: sanitized,
		Package:   pkg,
		Runtime:   pkg + RuntimeSuffix,
		Editor:    pkg + EditorSuffix,
		Tests:     pkg + TestsSuffix,
		Namespace: branding.NamespacePrefix() + sanitized,
	}
}

// Sanitize removes every space character. Other punctuation is kept, so
// "Bob's Tool" becomes "Bob'sTool".
func Sanitize(displayName string) string {
	return strings.ReplaceAll(displayName, " ", "")
}

// Resolve replaces the first Marker in identifier with value. An identifier
// without a marker is returned unchanged.
func Resolve(identifier, value string) string {
	if !HasMarker(identifier) {
		return identifier
	}
	return strings.Replace(identifier, Marker, value, 1)
}

// HasMarker reports whether identifier contains Marker.
func HasMarker(identifier string) bool {
	return strings.Contains(identifier, Marker)
}

// EditorNamespace is the namespace of the editor partition.
func (r Resolved) EditorNamespace() string { return r.Namespace + ".Editor" }

// TestsNamespace is the namespace of the tests partition.
func (r Resolved) TestsNamespace() string { return r.Namespace + ".Tests" }

// AssemblyNames returns the partition assembly names of a resolved package
// name in runtime, editor, tests order.
func AssemblyNames(pkg string) []string {
	return []string{pkg + RuntimeSuffix, pkg + EditorSuffix, pkg + TestsSuffix}
}
