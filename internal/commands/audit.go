package commands

import (
	"github.com/spf13/cobra"
)

func newAuditCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the audit log, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			records, err := e.trail.List()
			if err != nil {
				return err
			}
			cmd.Printf("%-5s %-20s %-20s %s\n", "ID", "Timestamp", "Action", "Details")
			for _, r := range records {
				cmd.Printf("%-5d %-20s %-20s %s\n",
					r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Action, r.Details)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}
