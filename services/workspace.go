// services/workspace.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/draftdesk/draftdesk/config"
	"github.com/draftdesk/draftdesk/models"
	"github.com/draftdesk/draftdesk/store"
)

// StateStore is the persistence collaborator the workspace flushes through.
// *store.Store satisfies it.
type StateStore interface {
	Load() (*models.Snapshot, error)
	Save(models.Snapshot) error
	Close() error
}

// Workspace is the composition root an embedding UI constructs: it loads
// the persisted snapshot, reconciles seed blueprints, wires the services
// together and rewrites the snapshot after every committed mutation.
type Workspace struct {
	cfg   *config.Config
	store StateStore

	catalog   *CatalogService
	contracts *ContractService
	dashboard *DashboardService
}

// OpenWorkspace opens the snapshot database at cfg.DatabasePath() and
// builds a workspace on top of it.
func OpenWorkspace(cfg *config.Config) (*Workspace, error) {
	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}
	return NewWorkspace(cfg, st)
}

func NewWorkspace(cfg *config.Config, st StateStore) (*Workspace, error) {
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}

	snap, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	catalog := NewCatalogService(snap.Blueprints)
	contracts := NewContractService(catalog, snap.Contracts)

	w := &Workspace{
		cfg:       cfg,
		store:     st,
		catalog:   catalog,
		contracts: contracts,
		dashboard: NewDashboardService(contracts),
	}

	seeded := 0
	if cfg.Seed {
		seeded = catalog.EnsureSeeds(SeedBlueprints())
	}

	catalog.afterChange = w.flush
	contracts.afterChange = w.flush
	if seeded > 0 {
		w.flush()
	}

	logrus.WithFields(logrus.Fields{
		"blueprints": len(catalog.blueprints),
		"contracts":  len(contracts.contracts),
	}).Info("Workspace ready")

	return w, nil
}

func (w *Workspace) Catalog() *CatalogService { return w.catalog }

func (w *Workspace) Contracts() *ContractService { return w.contracts }

func (w *Workspace) Dashboard() *DashboardService { return w.dashboard }

// Close flushes a final snapshot and releases the store.
func (w *Workspace) Close() error {
	w.flush()
	return w.store.Close()
}

func (w *Workspace) flush() {
	snap := models.Snapshot{
		Blueprints: w.catalog.snapshot(),
		Contracts:  w.contracts.snapshot(),
	}
	if err := w.store.Save(snap); err != nil {
		logrus.WithError(err).Error("Failed to persist snapshot")
	}
}
