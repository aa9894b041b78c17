package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "khata",
		Short:   "Double-entry bookkeeping on a SQLite ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newPostCommand())
	rootCmd.AddCommand(newLedgerCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newAuditCommand())
	rootCmd.AddCommand(newStockCommand())
	rootCmd.AddCommand(newUserCommand())
	rootCmd.AddCommand(newDashboardCommand())

	return rootCmd
}
