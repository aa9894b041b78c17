package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/model"
)

func newAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
	}
	accountCmd.AddCommand(newAccountAddCommand())
	accountCmd.AddCommand(newAccountListCommand())
	accountCmd.AddCommand(newAccountRmCommand())
	return accountCmd
}

func newAccountAddCommand() *cobra.Command {
	var dir, name, accountType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			t, err := model.ParseAccountType(accountType)
			if err != nil {
				return err
			}
			id, err := e.registry.OpenAccount(name, t)
			if err != nil {
				return err
			}
			cmd.Printf("Opened account %d (%s, %s)\n", id, name, t)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type: asset, liability, equity, revenue, expense, stock (required)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newAccountListCommand() *cobra.Command {
	var dir, accountType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			var accounts []model.Account
			if accountType != "" {
				t, err := model.ParseAccountType(accountType)
				if err != nil {
					return err
				}
				accounts, err = e.registry.ByType(t)
				if err != nil {
					return err
				}
			} else {
				accounts, err = e.registry.All()
				if err != nil {
					return err
				}
			}

			cmd.Printf("%-5s %-20s %-15s %10s\n", "ID", "Name", "Type", "Balance")
			for _, a := range accounts {
				cmd.Printf("%-5d %-20s %-15s %10s\n", a.ID, a.Name, a.Type, a.Balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&accountType, "type", "", "filter by account type")

	return cmd
}

func newAccountRmCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Close an account (must have no postings)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("invalid account id %q", args[0])
			}
			if err := e.registry.CloseAccount(id); err != nil {
				return err
			}
			cmd.Printf("Closed account %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}
