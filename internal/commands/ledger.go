package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/export"
)

func newLedgerCommand() *cobra.Command {
	var dir, output string

	cmd := &cobra.Command{
		Use:   "ledger <account-id>",
		Short: "Show an account's transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[0])
			}

			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			acct, err := e.registry.Get(accountID)
			if err != nil {
				return err
			}
			lines, err := e.engine.AccountLedger(accountID)
			if err != nil {
				return err
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				return export.WriteLedger(f, lines)
			}

			cmd.Printf("Ledger for %s (id %d)\n\n", acct.Name, acct.ID)
			cmd.Printf("%-8s %-10s %10s %-7s\n", "Line", "Voucher", "Amount", "Side")
			for _, l := range lines {
				cmd.Printf("%-8d %-10d %10s %-7s\n", l.ID, l.VoucherID, l.Amount.StringFixed(2), l.Side)
			}
			cmd.Printf("\nBalance: %s\n", acct.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&output, "output", "", "write CSV to file instead of printing")

	return cmd
}
