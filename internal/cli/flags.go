package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/upmkit/upmkit/internal/config"
	"github.com/upmkit/upmkit/internal/scaffold"
)

// packageFlags are the inputs shared by create and plan.
type packageFlags struct {
	cfg          scaffold.Config
	preset       string
	interactive  bool
	unityVersion string
	assetsDir    string
}

func (f *packageFlags) register(cmd *cobra.Command) {
	f.cfg = scaffold.DefaultConfig()
	fl := cmd.Flags()
	fl.StringVar(&f.cfg.PackageName, "name", f.cfg.PackageName, "Package identifier; [] is replaced with the display name")
	fl.StringVar(&f.cfg.DisplayName, "display-name", f.cfg.DisplayName, "Human-readable package name")
	fl.StringVar(&f.cfg.Description, "description", f.cfg.Description, "Package description")
	fl.StringVar(&f.cfg.Version, "version", f.cfg.Version, "Package version (semver)")
	fl.StringVar(&f.cfg.SampleOne, "sample-one", f.cfg.SampleOne, "First sample folder name")
	fl.StringVar(&f.cfg.SampleTwo, "sample-two", f.cfg.SampleTwo, "Second sample folder name")
	fl.BoolVar(&f.cfg.IncludeRuntime, "runtime", f.cfg.IncludeRuntime, "Include the Runtime partition")
	fl.BoolVar(&f.cfg.IncludeEditor, "editor", f.cfg.IncludeEditor, "Include the Editor partition")
	fl.BoolVar(&f.cfg.IncludeTests, "tests", f.cfg.IncludeTests, "Include the Tests partition")
	fl.StringVar(&f.preset, "from", "", "Load package settings from a YAML preset")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "Prompt for every package setting")
	fl.StringVar(&f.unityVersion, "unity-version", "", "Unity version used for the manifest's unity field (default: config unity_version)")
	fl.StringVar(&f.assetsDir, "assets-dir", "", "Directory with LICENSE.txt, gitignore.txt, gitattributes.txt overrides (default: config assets_dir)")
}

// resolve layers the inputs: defaults, then preset, then flags set on the
// command line, then interactive answers.
func (f *packageFlags) resolve(cmd *cobra.Command) (scaffold.Config, scaffold.Env, error) {
	cfg := f.cfg
	if f.preset != "" {
		preset, err := scaffold.LoadPreset(f.preset)
		if err != nil {
			return cfg, scaffold.Env{}, err
		}
		cfg = overlayChanged(cmd, preset, f.cfg)
		logger.Debug("preset loaded", "path", f.preset)
	}

	if f.interactive {
		answered, err := runForm(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg)
		if err != nil {
			return cfg, scaffold.Env{}, fmt.Errorf("interactive mode: %w", err)
		}
		cfg = answered
	}

	assetsDir := f.assetsDir
	if assetsDir == "" {
		assetsDir = config.Get(config.KeyAssetsDir)
	}
	env, err := scaffold.LoadEnv(assetsDir)
	if err != nil {
		return cfg, env, err
	}

	env.HostVersion = f.unityVersion
	if env.HostVersion == "" {
		env.HostVersion = config.Get(config.KeyUnityVersion)
	}
	env.Author = config.Author()
	logger.Debug("environment resolved", "assets_dir", assetsDir, "unity_version", env.HostVersion)

	return cfg, env, nil
}

// overlayChanged copies every flag the user set explicitly from flags onto base.
func overlayChanged(cmd *cobra.Command, base, flags scaffold.Config) scaffold.Config {
	changed := cmd.Flags().Changed
	if changed("name") {
		base.PackageName = flags.PackageName
	}
	if changed("display-name") {
		base.DisplayName = flags.DisplayName
	}
	if changed("description") {
		base.Description = flags.Description
	}
	if changed("version") {
		base.Version = flags.Version
	}
	if changed("sample-one") {
		base.SampleOne = flags.SampleOne
	}
	if changed("sample-two") {
		base.SampleTwo = flags.SampleTwo
	}
	if changed("runtime") {
		base.IncludeRuntime = flags.IncludeRuntime
	}
	if changed("editor") {
		base.IncludeEditor = flags.IncludeEditor
	}
	if changed("tests") {
		base.IncludeTests = flags.IncludeTests
	}
	return base
}

// resolveOutputDir returns dir, or the working directory when dir is empty.
func resolveOutputDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
