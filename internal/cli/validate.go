package cli

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/upmkit/upmkit/internal/scaffold"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [package-dir]",
		Short: "Check a package's manifest and assembly definitions",
		Long: `Validate package.json and every .asmdef under a package directory against
their schemas, and check that package-local assembly references and sample
folders exist. Defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			report, err := scaffold.Verify(afero.NewOsFs(), dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			term := termenv.NewOutput(out)
			ok := term.String("[ OK ]").Foreground(term.Color("2"))
			fail := term.String("[FAIL]").Foreground(term.Color("1")).Bold()

			fmt.Fprintf(out, "Package validation: %s\n", dir)
			for _, c := range report.Checks {
				status := ok
				if !c.OK {
					status = fail
				}
				fmt.Fprintf(out, "  %s %s: %s\n", status, c.Subject, c.Message)
			}
			if report.Failed() {
				return fmt.Errorf("package validation failed")
			}
			return nil
		},
	}
}
