package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/config"
	"github.com/khata-dev/khata/internal/registry"
	"github.com/khata-dev/khata/internal/sqlite"
)

func newInitCommand() *cobra.Command {
	var skipChart bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new khata ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, skipChart)
		},
	}

	cmd.Flags().BoolVar(&skipChart, "skip-chart", false, "do not seed the default chart of accounts")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, skipChart bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	db, err := sqlite.Open(filepath.Join(dir, cfg.Database))
	if err != nil {
		return err
	}
	defer db.Close()

	if !skipChart {
		reg := registry.NewService(db, audit.NewLog(db))
		for _, acct := range registry.DefaultChart() {
			if _, err := reg.OpenAccount(acct.Name, acct.Type); err != nil {
				return fmt.Errorf("seeding account %q: %w", acct.Name, err)
			}
		}
	}

	cmd.Printf("Initialized khata ledger in %s\n", dir)
	return nil
}
