package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdataDir, name))
	if err != nil {
		t.Fatalf("reading testdata %s: %v", name, err)
	}
	return data
}

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		kind, file string
	}{
		{DocPackage, "valid-package.json"},
		{DocAssembly, "valid-editor.asmdef"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := Validate(tt.kind, readTestdata(t, tt.file))
			if err != nil {
				t.Fatalf("Validate(%s) error: %v", tt.file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		kind, file, desc string
	}{
		{DocPackage, "invalid-package-missing-name.json", "missing required name"},
		{DocPackage, "invalid-package-bad-sample.json", "sample path outside Samples~ and bad unity version"},
		{DocAssembly, "invalid-empty-references.asmdef", "empty references array"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := Validate(tt.kind, readTestdata(t, tt.file))
			if err != nil {
				t.Fatalf("Validate(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := Validate(DocPackage, readTestdata(t, "invalid-package-bad-sample.json"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	paths := map[string]bool{}
	for _, issue := range result.Issues {
		if issue.Message == "" {
			t.Errorf("issue at %s has empty message", issue.Path)
		}
		paths[issue.Path] = true
	}
	for _, want := range []string{"/unity", "/samples/0/path"} {
		if !paths[want] {
			t.Errorf("expected an issue at %s, got %v", want, result.Issues)
		}
	}
}

func TestValidate_NotJSON(t *testing.T) {
	_, err := Validate(DocPackage, readTestdata(t, "invalid-not-json.json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	if _, err := Validate("workflow", []byte("{}")); err == nil {
		t.Fatal("expected error for unknown document kind")
	}
}

func TestKindForPath(t *testing.T) {
	tests := map[string]string{
		"pkg/package.json":               DocPackage,
		"pkg/Runtime/x.runtime.asmdef":   DocAssembly,
		"pkg/Runtime/MyToolRuntime.cs":   "",
		"pkg/Runtime/x.runtime.asmdef.x": "",
	}
	for path, want := range tests {
		if got := KindForPath(path); got != want {
			t.Errorf("KindForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestIssueString(t *testing.T) {
	i := ValidationIssue{Path: "/name", Message: "missing"}
	if got := i.String(); got != "/name: missing" {
		t.Errorf("String() = %q", got)
	}
	i.Path = ""
	if got := i.String(); got != "missing" {
		t.Errorf("String() = %q", got)
	}
}
