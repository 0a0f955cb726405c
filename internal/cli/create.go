package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/upmkit/upmkit/internal/scaffold"
)

func newCreateCmd() *cobra.Command {
	var (
		flags     packageFlags
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Scaffold a new Unity package",
		Long: `Scaffold a new Unity package under <output-dir>/<package name>.

The package name is the --name identifier with its [] placeholder replaced by
the display name without spaces.

Examples:
  upmkit create --name "com.acme.tools-[]" --display-name "My Tool"
  upmkit create --from preset.yaml --tests
  upmkit create -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			dest, err := resolveOutputDir(outputDir)
			if err != nil {
				return err
			}

			logger.Debug("generating package", "dest", dest, "package", scaffold.PackageRoot(cfg))
			result, err := scaffold.Generate(afero.NewOsFs(), dest, cfg, env)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printResult(out, result)
			printNextSteps(out, cfg)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Parent directory of the package folder (default: current directory)")
	return cmd
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Created package at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func printNextSteps(w io.Writer, cfg scaffold.Config) {
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Replace the com.unity.[CHANGETHISPACKAGENAME] placeholders in package.json")
	step := 2
	if cfg.IncludeEditor {
		fmt.Fprintf(w, "  %d. Point [CustomEditor(typeof(YourScriptName))] in Editor/ at your component\n", step)
		step++
	}
	fmt.Fprintf(w, "  %d. Add the package to a project via Package Manager > Add package from disk\n", step)
}
