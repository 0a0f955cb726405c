package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/upmkit/upmkit/internal/branding"
	"github.com/upmkit/upmkit/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// logger carries diagnostics to stderr. It discards everything until the
// root command's pre-run installs a handler.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds new Unity Package Manager packages: the package manifest,
one assembly definition per code partition (runtime, editor, tests), starter
C# scripts, and an empty samples layout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			config.Load()
			logger.Debug("config loaded", "path", config.FilePath())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(
		newCreateCmd(),
		newPlanCmd(),
		newValidateCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}
