package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/model"
)

func newStockCommand() *cobra.Command {
	stockCmd := &cobra.Command{
		Use:   "stock",
		Short: "Manage stock items",
	}
	stockCmd.AddCommand(newStockAddCommand())
	stockCmd.AddCommand(newStockListCommand())
	return stockCmd
}

func newStockAddCommand() *cobra.Command {
	var dir, name, purchase, selling, details string
	var quantity int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a stock item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			purchasePrice, err := decimal.NewFromString(purchase)
			if err != nil {
				return fmt.Errorf("invalid purchase price %q", purchase)
			}
			sellingPrice, err := decimal.NewFromString(selling)
			if err != nil {
				return fmt.Errorf("invalid selling price %q", selling)
			}

			id, err := e.stock.Add(model.StockItem{
				ProductName:   name,
				Quantity:      quantity,
				PurchasePrice: purchasePrice,
				SellingPrice:  sellingPrice,
				Details:       details,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Added stock item %d (%s)\n", id, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&name, "name", "", "product name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().Int64Var(&quantity, "quantity", 0, "quantity on hand")
	cmd.Flags().StringVar(&purchase, "purchase-price", "0", "purchase price")
	cmd.Flags().StringVar(&selling, "selling-price", "0", "selling price")
	cmd.Flags().StringVar(&details, "details", "", "free-text details")

	return cmd
}

func newStockListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stock items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			items, err := e.stock.List()
			if err != nil {
				return err
			}
			cmd.Printf("%-5s %-20s %8s %10s %10s\n", "ID", "Product", "Qty", "Purchase", "Selling")
			for _, item := range items {
				cmd.Printf("%-5d %-20s %8d %10s %10s\n",
					item.ID, item.ProductName, item.Quantity,
					item.PurchasePrice.StringFixed(2), item.SellingPrice.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}
