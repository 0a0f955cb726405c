package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/upmkit/upmkit/internal/scaffold"
)

type planEntry struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Bytes   int    `json:"bytes"`
	Content string `json:"content,omitempty"`
}

func newPlanCmd() *cobra.Command {
	var (
		flags    packageFlags
		asJSON   bool
		showPath string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the files create would write, without writing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			nodes := scaffold.Plan(cfg, env)
			out := cmd.OutOrStdout()

			if showPath != "" {
				for _, n := range nodes {
					if n.Path == showPath && !n.IsDir() {
						fmt.Fprint(out, n.Content)
						return nil
					}
				}
				return fmt.Errorf("%s is not a planned file", showPath)
			}

			if asJSON {
				entries := make([]planEntry, len(nodes))
				for i, n := range nodes {
					entries[i] = planEntry{Path: n.Path, Type: "file", Bytes: len(n.Content), Content: n.Content}
					if n.IsDir() {
						entries[i].Type = "dir"
					}
				}
				data, err := json.MarshalIndent(map[string]interface{}{
					"root":  scaffold.PackageRoot(cfg),
					"nodes": entries,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling plan: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s/\n", scaffold.PackageRoot(cfg))
			for _, n := range nodes {
				if n.IsDir() {
					fmt.Fprintf(out, "  %s/\n", n.Path)
					continue
				}
				fmt.Fprintf(out, "  %-60s %6d B\n", n.Path, len(n.Content))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan, including file contents, as JSON")
	cmd.Flags().StringVar(&showPath, "show", "", "Print the content of one planned file (e.g., package.json)")
	return cmd
}
