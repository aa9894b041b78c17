package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/id"
	"github.com/khata-dev/khata/internal/ledger"
)

func newPostCommand() *cobra.Command {
	var dir, desc, kind string
	var lines []string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Submit a voucher",
		Long: `Submit a voucher of two or more transaction lines.

Each --line takes the form <account-id>:<amount>:<side>, e.g.

  khata post --desc "Cash sale" --line 1:100.00:debit --line 5:100.00:credit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			draft := ledger.Draft{Description: desc, Kind: kind}
			for _, raw := range lines {
				line, err := parseLineFlag(raw)
				if err != nil {
					return err
				}
				draft.Lines = append(draft.Lines, line)
			}

			voucher, err := e.engine.Submit(draft)
			if err != nil {
				return err
			}
			cmd.Printf("Committed voucher %s (id %d)\n",
				id.FormatVoucherRef(voucher.Kind, voucher.ID), voucher.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&desc, "desc", "", "voucher description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&kind, "kind", "", "voucher kind (default Journal)")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "transaction line as <account-id>:<amount>:<side> (repeatable)")

	return cmd
}

func parseLineFlag(raw string) (ledger.DraftLine, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return ledger.DraftLine{}, fmt.Errorf("invalid --line %q, want <account-id>:<amount>:<side>", raw)
	}
	accountID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return ledger.DraftLine{}, fmt.Errorf("invalid account id in --line %q", raw)
	}
	return ledger.DraftLine{AccountID: accountID, Amount: parts[1], Side: parts[2]}, nil
}
