package scaffold

import (
	"github.com/upmkit/upmkit/internal/manifest"
	"github.com/upmkit/upmkit/internal/names"
	"github.com/upmkit/upmkit/internal/render"
)

// NodeKind distinguishes files from directories in a plan.
type NodeKind int

const (
	NodeFile NodeKind = iota
	NodeDir
)

// Node is one entry of a planned package tree. Path is slash separated and
// relative to the package root. Directory nodes have no content.
type Node struct {
	Path    string
	Content string
	Kind    NodeKind
}

// IsDir reports whether the node is a directory.
func (n Node) IsDir() bool { return n.Kind == NodeDir }

// Root-level file names.
const (
	ManifestFile      = "package.json"
	ReadmeFile        = "README.md"
	ChangelogFile     = "CHANGELOG.md"
	LicenseFile       = "LICENSE.md"
	GitIgnoreFile     = ".gitignore"
	GitAttributesFile = ".gitattributes"
)

// partition describes one optional code partition of the package.
type partition struct {
	dir       string // "Runtime", "Editor", "Tests"
	kind      manifest.Partition
	assembly  string
	stub      render.Kind
	namespace string
	className string // substituted into the stub
	fileName  string // stub file name without extension
}

type planner struct {
	nodes []Node
	seen  map[string]bool
}

func (p *planner) add(n Node) {
	if p.seen[n.Path] {
		return
	}
	p.seen[n.Path] = true
	p.nodes = append(p.nodes, n)
}

func (p *planner) file(path, content string) {
	p.add(Node{Path: path, Content: content, Kind: NodeFile})
}

func (p *planner) dir(path string) {
	p.add(Node{Path: path, Kind: NodeDir})
}

// Plan computes the full package tree for cfg. The result is ordered and
// free of duplicate paths, and the same inputs always give the same output.
func Plan(cfg Config, env Env) []Node {
	n := names.Derive(cfg.PackageName, cfg.DisplayName)
	p := &planner{seen: make(map[string]bool)}

	p.file(ManifestFile, must(manifest.BuildPackage(manifest.PackageInfo{
		Name:        n.Package,
		Version:     cfg.Version,
		DisplayName: cfg.DisplayName,
		Description: cfg.Description,
		HostVersion: env.HostVersion,
		SampleOne:   cfg.SampleOne,
		SampleTwo:   cfg.SampleTwo,
		Author:      env.Author,
		URLs:        env.URLs,
	})))
	p.file(ReadmeFile, "# "+cfg.DisplayName+"\n\n"+cfg.Description)
	p.file(ChangelogFile, "## "+cfg.Version+"\n- Initial release")
	p.file(LicenseFile, env.License)
	p.file(GitIgnoreFile, env.GitIgnore)
	p.file(GitAttributesFile, env.GitAttributes)

	// Editor and tests only reference the runtime assembly when it exists.
	var runtimeRefs []string
	if cfg.IncludeRuntime {
		runtimeRefs = []string{n.Runtime}
		p.partition(nil, partition{
			dir:       "Runtime",
			kind:      manifest.PartitionRuntime,
			assembly:  n.Runtime,
			stub:      render.Runtime,
			namespace: n.Namespace,
			className: n.Sanitized + "Runtime",
			fileName:  n.Sanitized + "Runtime",
		})
	}
	if cfg.IncludeEditor {
		p.partition(runtimeRefs, partition{
			dir:       "Editor",
			kind:      manifest.PartitionEditor,
			assembly:  n.Editor,
			stub:      render.Editor,
			namespace: n.EditorNamespace(),
			className: n.Sanitized,
			fileName:  n.Sanitized + "Editor",
		})
	}
	if cfg.IncludeTests {
		p.partition(runtimeRefs, partition{
			dir:       "Tests",
			kind:      manifest.PartitionTests,
			assembly:  n.Tests,
			stub:      render.Test,
			namespace: n.TestsNamespace(),
			className: n.Sanitized + "Test",
			fileName:  n.Sanitized + "Test",
		})
	}

	p.dir(manifest.SamplePath(cfg.SampleOne))
	p.dir(manifest.SamplePath(cfg.SampleTwo))

	return p.nodes
}

func (p *planner) partition(refs []string, part partition) {
	p.file(part.dir+"/"+part.assembly+".asmdef", must(manifest.BuildAssembly(part.assembly, part.kind, refs)))
	p.file(part.dir+"/"+part.fileName+".cs", render.MustRender(part.stub, render.Substitution{
		Namespace: part.namespace,
		ClassName: part.className,
	}))
}

// PackageRoot returns the top-level folder name of the generated package.
func PackageRoot(cfg Config) string {
	return names.Derive(cfg.PackageName, cfg.DisplayName).Package
}

// must unwraps builders whose only failure mode is a broken embedded template.
func must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}
