// store/store.go
//
// Package store is the persistence collaborator: it saves and loads the
// full {blueprints, contracts} snapshot in an embedded sqlite file. The
// core never reads through it mid-session; the workspace loads once at
// startup and rewrites the snapshot after each mutation.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/draftdesk/draftdesk/models"
)

type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the snapshot database at path and runs
// migrations. Parent directories are created as needed. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if err := db.AutoMigrate(&models.Blueprint{}, &models.Contract{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.WithField("path", path).Debug("Snapshot database opened")
	return &Store{db: db}, nil
}

// Load reads the persisted snapshot. A fresh database yields an empty
// snapshot, not an error. Row order restores insertion order.
func (s *Store) Load() (*models.Snapshot, error) {
	snap := &models.Snapshot{}

	if err := s.db.Order("created_at, id").Find(&snap.Blueprints).Error; err != nil {
		return nil, fmt.Errorf("failed to load blueprints: %w", err)
	}

	if err := s.db.Order("created_at, id").Find(&snap.Contracts).Error; err != nil {
		return nil, fmt.Errorf("failed to load contracts: %w", err)
	}

	return snap, nil
}

// Save replaces the persisted state with snap in a single transaction.
func (s *Store) Save(snap models.Snapshot) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		if err := session.Delete(&models.Blueprint{}).Error; err != nil {
			return fmt.Errorf("failed to clear blueprints: %w", err)
		}
		if err := session.Delete(&models.Contract{}).Error; err != nil {
			return fmt.Errorf("failed to clear contracts: %w", err)
		}

		if len(snap.Blueprints) > 0 {
			if err := tx.Create(&snap.Blueprints).Error; err != nil {
				return fmt.Errorf("failed to save blueprints: %w", err)
			}
		}
		if len(snap.Contracts) > 0 {
			if err := tx.Create(&snap.Contracts).Error; err != nil {
				return fmt.Errorf("failed to save contracts: %w", err)
			}
		}

		return nil
	})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot database: %w", err)
	}

	return nil
}
