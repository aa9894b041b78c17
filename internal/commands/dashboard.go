package commands

import (
	"github.com/spf13/cobra"
)

func newDashboardCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show a summary of the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			accounts, err := e.registry.Count()
			if err != nil {
				return err
			}
			vouchers, err := e.engine.VoucherCount()
			if err != nil {
				return err
			}
			items, err := e.stock.Count()
			if err != nil {
				return err
			}

			cmd.Printf("Total Accounts: %d\n", accounts)
			cmd.Printf("Total Vouchers: %d\n", vouchers)
			cmd.Printf("Total Stock Items: %d\n", items)

			last, ok, err := e.engine.LastVoucher()
			if err != nil {
				return err
			}
			if ok {
				cmd.Printf("Last Voucher: %s (%s) on %s\n",
					last.Description, last.Kind, last.CreatedAt.Format("2006-01-02 15:04:05"))
			} else {
				cmd.Println("No vouchers recorded yet.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}
