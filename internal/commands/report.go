package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/export"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/report"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate reports from the ledger",
	}
	reportCmd.AddCommand(newReportSubcommand("trial-balance", "Trial balance of every account"))
	reportCmd.AddCommand(newReportSubcommand("income-statement", "Income statement (revenue vs expense)"))
	reportCmd.AddCommand(newReportSubcommand("balance-sheet", "Balance sheet (assets vs liabilities and equity)"))
	return reportCmd
}

func newReportSubcommand(name, short string) *cobra.Command {
	var dir, output, format string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			accounts, err := e.registry.All()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			return renderReport(w, name, format, accounts)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&output, "output", "", "write the report to a file")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or csv")

	return cmd
}

func renderReport(w io.Writer, name, format string, accounts []model.Account) error {
	switch format {
	case "text":
		var text string
		switch name {
		case "trial-balance":
			text = report.RenderTrialBalance(report.TrialBalance(accounts))
		case "income-statement":
			text = report.RenderIncomeStatement(report.IncomeStatement(accounts))
		case "balance-sheet":
			text = report.RenderBalanceSheet(report.BalanceSheet(accounts))
		}
		_, err := io.WriteString(w, text)
		return err
	case "csv":
		switch name {
		case "trial-balance":
			return export.WriteTrialBalance(w, report.TrialBalance(accounts))
		case "income-statement":
			return export.WriteIncomeStatement(w, report.IncomeStatement(accounts))
		case "balance-sheet":
			return export.WriteBalanceSheet(w, report.BalanceSheet(accounts))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q, want text or csv", format)
	}
}
