// Command flowctl administers a file-flow deployment: schema migrations,
// reference data seeding, and dashboard reports.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configDir string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flowctl",
		Short:         "Administer the file-flow service",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing config.toml")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newReportCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
