package manifest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/upmkit/upmkit/internal/branding"
)

func testInfo() PackageInfo {
	return PackageInfo{
		Name:        "com.acme.pkg-MyTool",
		Version:     "2.1.0",
		DisplayName: "My Tool",
		Description: "Does things.",
		HostVersion: "2022.3.10f1",
		SampleOne:   "Basics",
		SampleTwo:   "Advanced",
		Author:      branding.DefaultAuthor(),
		URLs:        branding.DefaultURLs(),
	}
}

func TestHostCompat(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2022.3.10f1", "2022.3"},
		{"6000.0.23f1", "6000.0"},
		{"2019.4", "2019.4"},
		{"", DefaultHostCompat},
		{"unknown", DefaultHostCompat},
		{"v2022.3", DefaultHostCompat},
		{"2022", DefaultHostCompat},
	}
	for _, tt := range tests {
		if got := HostCompat(tt.in); got != tt.want {
			t.Errorf("HostCompat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildPackageFieldOrder(t *testing.T) {
	out, err := BuildPackage(testInfo())
	if err != nil {
		t.Fatalf("BuildPackage() error: %v", err)
	}

	order := []string{
		`"name": "com.acme.pkg-MyTool"`,
		`"version": "2.1.0"`,
		`"displayName": "My Tool"`,
		`"description": "Does things."`,
		`"unity": "2022.3"`,
		`"dependencies"`,
		`"documentationUrl"`,
		`"changelogUrl"`,
		`"licensesUrl"`,
		`"author"`,
		`"samples"`,
	}
	last := -1
	for _, field := range order {
		idx := strings.Index(out, field)
		if idx < 0 {
			t.Fatalf("package.json missing %s\n%s", field, out)
		}
		if idx < last {
			t.Errorf("field %s out of order", field)
		}
		last = idx
	}

	if n := strings.Count(out, `"com.unity.[CHANGETHISPACKAGENAME]": "[version.number.here]"`); n != 3 {
		t.Errorf("dependency placeholders = %d, want 3", n)
	}
}

func TestBuildPackageSamples(t *testing.T) {
	out, err := BuildPackage(testInfo())
	if err != nil {
		t.Fatalf("BuildPackage() error: %v", err)
	}

	var pkg Package
	if err := json.Unmarshal([]byte(out), &pkg); err != nil {
		t.Fatalf("generated package.json is not valid JSON: %v\n%s", err, out)
	}
	if len(pkg.Samples) != 2 {
		t.Fatalf("samples = %d, want 2", len(pkg.Samples))
	}
	want := []Sample{
		{DisplayName: "Basics", Description: "Does things.", Path: "Samples~/Basics"},
		{DisplayName: "Advanced", Description: "Does things.", Path: "Samples~/Advanced"},
	}
	for i, s := range want {
		if pkg.Samples[i] != s {
			t.Errorf("samples[%d] = %+v, want %+v", i, pkg.Samples[i], s)
		}
	}
	if pkg.Author.Name != "SOGGY INK GAMES" {
		t.Errorf("author.name = %q", pkg.Author.Name)
	}
}

func TestBuildPackageEscapesStrings(t *testing.T) {
	info := testInfo()
	info.DisplayName = `Bob's "Quoted" <Tool>`
	info.Description = "line one\nline two"

	out, err := BuildPackage(info)
	if err != nil {
		t.Fatalf("BuildPackage() error: %v", err)
	}

	var pkg Package
	if err := json.Unmarshal([]byte(out), &pkg); err != nil {
		t.Fatalf("generated package.json is not valid JSON: %v\n%s", err, out)
	}
	if pkg.DisplayName != info.DisplayName {
		t.Errorf("displayName = %q, want %q", pkg.DisplayName, info.DisplayName)
	}
	if pkg.Description != info.Description {
		t.Errorf("description = %q, want %q", pkg.Description, info.Description)
	}
	if !strings.Contains(out, "<Tool>") {
		t.Error("angle brackets should not be HTML-escaped")
	}
}

func TestBuildPackageUnmatchedHostVersion(t *testing.T) {
	info := testInfo()
	info.HostVersion = ""
	out, err := BuildPackage(info)
	if err != nil {
		t.Fatalf("BuildPackage() error: %v", err)
	}
	if !strings.Contains(out, `"unity": "2020.3"`) {
		t.Errorf("expected fallback unity version\n%s", out)
	}
}

func TestBuildPackageIsSchemaValid(t *testing.T) {
	out, err := BuildPackage(testInfo())
	if err != nil {
		t.Fatalf("BuildPackage() error: %v", err)
	}
	result, err := ValidatePackage([]byte(out))
	if err != nil {
		t.Fatalf("ValidatePackage() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("generated package.json invalid: %v", result.Issues)
	}
}

func TestBuildAssembly(t *testing.T) {
	tests := []struct {
		name      string
		partition Partition
		refs      []string
		wantRefs  []string
		wantScope []string
	}{
		{"runtime", PartitionRuntime, nil, nil, []string{}},
		{"editor with runtime", PartitionEditor, []string{"pkg.runtime"},
			[]string{"pkg.runtime", "UnityEditor.CoreModule", "UnityEditor.UIModule"}, []string{"Editor"}},
		{"editor without runtime", PartitionEditor, nil,
			[]string{"UnityEditor.CoreModule", "UnityEditor.UIModule"}, []string{"Editor"}},
		{"tests with runtime", PartitionTests, []string{"pkg.runtime"},
			[]string{"pkg.runtime", "UnityEngine.TestRunner", "UnityEditor.TestRunner"}, []string{}},
		{"tests without runtime", PartitionTests, nil,
			[]string{"UnityEngine.TestRunner", "UnityEditor.TestRunner"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := BuildAssembly("pkg."+tt.name, tt.partition, tt.refs)
			if err != nil {
				t.Fatalf("BuildAssembly() error: %v", err)
			}

			var raw map[string]interface{}
			if err := json.Unmarshal([]byte(out), &raw); err != nil {
				t.Fatalf("invalid JSON: %v\n%s", err, out)
			}
			if _, present := raw["references"]; present != (tt.wantRefs != nil) {
				t.Errorf("references present = %v, want %v\n%s", present, tt.wantRefs != nil, out)
			}

			var asm AssemblyDefinition
			if err := json.Unmarshal([]byte(out), &asm); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			if strings.Join(asm.References, ",") != strings.Join(tt.wantRefs, ",") {
				t.Errorf("references = %v, want %v", asm.References, tt.wantRefs)
			}
			if strings.Join(asm.IncludePlatforms, ",") != strings.Join(tt.wantScope, ",") {
				t.Errorf("includePlatforms = %v, want %v", asm.IncludePlatforms, tt.wantScope)
			}
			if asm.AllowUnsafeCode || !asm.AutoReferenced || asm.RootNamespace != "" {
				t.Errorf("fixed flags wrong: %+v", asm)
			}

			result, err := ValidateAssembly([]byte(out))
			if err != nil {
				t.Fatalf("ValidateAssembly() error: %v", err)
			}
			if !result.Valid {
				t.Errorf("generated asmdef invalid: %v", result.Issues)
			}
		})
	}
}

func TestBuildAssemblyGolden(t *testing.T) {
	tests := []struct {
		name      string
		partition Partition
		refs      []string
		want      string
	}{
		{
			name:      "pkg.editor",
			partition: PartitionEditor,
			refs:      []string{"pkg.runtime"},
			want: `{
    "name": "pkg.editor",
    "rootNamespace": "",
    "includePlatforms": [
        "Editor"
    ],
    "excludePlatforms": [],
    "allowUnsafeCode": false,
    "overrideReferences": false,
    "precompiledReferences": [],
    "autoReferenced": true,
    "defineConstraints": [],
    "versionDefines": [],
    "noEngineReferences": false,
    "references": [
        "pkg.runtime",
        "UnityEditor.CoreModule",
        "UnityEditor.UIModule"
    ]
}
`,
		},
		{
			name:      "pkg.runtime",
			partition: PartitionRuntime,
			want: `{
    "name": "pkg.runtime",
    "rootNamespace": "",
    "includePlatforms": [],
    "excludePlatforms": [],
    "allowUnsafeCode": false,
    "overrideReferences": false,
    "precompiledReferences": [],
    "autoReferenced": true,
    "defineConstraints": [],
    "versionDefines": [],
    "noEngineReferences": false
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildAssembly(tt.name, tt.partition, tt.refs)
			if err != nil {
				t.Fatalf("BuildAssembly() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildAssembly() mismatch\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	if !PartitionEditor.EditorOnly() || PartitionRuntime.EditorOnly() || PartitionTests.EditorOnly() {
		t.Error("only the editor partition is editor-only")
	}
	if PartitionRuntime.FrameworkReferences() != nil {
		t.Error("runtime partition has no framework references")
	}
	if got := PartitionTests.String(); got != "Tests" {
		t.Errorf("String() = %q", got)
	}
}
