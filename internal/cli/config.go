package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/upmkit/upmkit/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write upmkit configuration stored at ~/.upmkit/config.yaml.

Keys: ` + strings.Join(config.Keys, ", ") + `
Every key can also be set through the environment, e.g. UPMKIT_UNITY_VERSION.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !config.IsKnown(key) {
				return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(config.Keys, ", "))
			}
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	return configCmd
}
