package manifest

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

type compiled struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

var (
	schemas = map[string]*compiled{
		DocPackage:  {},
		DocAssembly: {},
	}
	printer = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name", "/samples/0/path")
	Message string // Human-readable error message
	Keyword string // Schema keyword location that failed
}

// String formats the issue as "path: message".
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the embedded schema for kind once and returns it.
func getSchema(kind string) (*jsonschema.Schema, error) {
	c, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
	c.once.Do(func() {
		file := kind + ".schema.json"
		raw, err := schemaFS.ReadFile("schema/" + file)
		if err != nil {
			c.err = fmt.Errorf("reading schema %s: %w", file, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			c.err = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		comp := jsonschema.NewCompiler()
		if err := comp.AddResource(file, doc); err != nil {
			c.err = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		c.schema, c.err = comp.Compile(file)
		if c.err != nil {
			c.err = fmt.Errorf("compiling schema: %w", c.err)
		}
	})
	return c.schema, c.err
}

// Validate checks a package.json or .asmdef document against its embedded
// schema. Schema violations land in the result; the error is reserved for
// input that is not JSON at all or an unknown kind.
func Validate(kind string, data []byte) (*ValidationResult, error) {
	schema, err := getSchema(kind)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating %s: %w", kind, err)
	}
	return &ValidationResult{Issues: extractIssues(ve)}, nil
}

// ValidatePackage validates package.json content.
func ValidatePackage(data []byte) (*ValidationResult, error) {
	return Validate(DocPackage, data)
}

// ValidateAssembly validates .asmdef content.
func ValidateAssembly(data []byte) (*ValidationResult, error) {
	return Validate(DocAssembly, data)
}

// KindForPath returns the document kind for a file name, or "" when the file
// is neither a package manifest nor an assembly definition.
func KindForPath(path string) string {
	switch {
	case strings.HasSuffix(path, "package.json"):
		return DocPackage
	case strings.HasSuffix(path, ".asmdef"):
		return DocAssembly
	default:
		return ""
	}
}

// extractIssues flattens the error tree into its leaves, dropping
// combinator and $ref wrappers, and returns them sorted by location with
// duplicates removed.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	set := map[ValidationIssue]struct{}{}
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		for _, cause := range e.Causes {
			walk(cause)
		}
		if len(e.Causes) > 0 || e.ErrorKind == nil {
			return
		}
		kw := leafKeyword(e.ErrorKind.KeywordPath())
		switch kw {
		case "", "allOf", "anyOf", "oneOf", "$ref":
			return
		}
		set[ValidationIssue{
			Path:    pointer(e.InstanceLocation),
			Message: e.ErrorKind.LocalizedString(printer),
			Keyword: kw,
		}] = struct{}{}
	}
	walk(ve)

	if len(set) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	issues := make([]ValidationIssue, 0, len(set))
	for issue := range set {
		issues = append(issues, issue)
	}
	sort.Slice(issues, func(a, b int) bool {
		if issues[a].Path != issues[b].Path {
			return issues[a].Path < issues[b].Path
		}
		return issues[a].Keyword < issues[b].Keyword
	})
	return issues
}

func leafKeyword(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}

// pointer renders an instance location as a JSON pointer; the document root is "".
func pointer(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}
