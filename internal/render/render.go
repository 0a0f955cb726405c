package render

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Kind selects a source stub.
type Kind int

const (
	Runtime Kind = iota
	Editor
	Test
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Runtime:
		return "runtime"
	case Editor:
		return "editor"
	case Test:
		return "test"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Substitution is the data a stub is rendered with. Namespace is used as
// given. The editor and test stubs append "Editor" and "Tests" to ClassName.
type Substitution struct {
	Namespace string
	ClassName string
}

var (
	parsed    *template.Template
	parseOnce sync.Once
	parseErr  error
)

// load parses the embedded template set once.
func load() (*template.Template, error) {
	parseOnce.Do(func() {
		parsed, parseErr = template.ParseFS(templateFS, "templates/*.tmpl")
		if parseErr != nil {
			parseErr = fmt.Errorf("parsing embedded templates: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// fileName maps a kind to its embedded template name.
func fileName(k Kind) (string, error) {
	switch k {
	case Runtime, Editor, Test:
		return k.String() + ".cs.tmpl", nil
	default:
		return "", fmt.Errorf("unknown template kind %d", int(k))
	}
}

// Render executes the stub template for kind.
func Render(kind Kind, sub Substitution) (string, error) {
	tmpl, err := load()
	if err != nil {
		return "", err
	}
	name, err := fileName(kind)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, sub); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// MustRender is Render for callers whose kind is a compile-time constant.
// It panics only if the embedded template set is broken.
func MustRender(kind Kind, sub Substitution) string {
	out, err := Render(kind, sub)
	if err != nil {
		panic(err)
	}
	return out
}
