package commands

import (
	"fmt"
	"path/filepath"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/config"
	"github.com/khata-dev/khata/internal/identity"
	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/registry"
	"github.com/khata-dev/khata/internal/sqlite"
	"github.com/khata-dev/khata/internal/stock"
)

// env bundles the opened services for one command invocation.
type env struct {
	cfg      *config.Config
	db       *sqlite.DB
	trail    *audit.Log
	registry *registry.Service
	engine   *ledger.Engine
	stock    *stock.Service
	identity *identity.Service
}

// openEnv loads khata.yaml from dir and opens the database it points
// at. Callers must Close the returned env.
func openEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, err
	}

	dbPath := cfg.Database
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(absDir, dbPath)
	}
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}

	trail := audit.NewLog(db)
	reg := registry.NewService(db, trail)
	return &env{
		cfg:      cfg,
		db:       db,
		trail:    trail,
		registry: reg,
		engine:   ledger.NewEngine(db, reg, trail),
		stock:    stock.NewService(db, trail),
		identity: identity.NewService(db, trail),
	}, nil
}

func (e *env) Close() error {
	return e.db.Close()
}
