package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion represents the current database schema version
const CurrentSchemaVersion = "1.1.0"

// step is one versioned schema change
type step struct {
	version string
	name    string
	run     func(ctx context.Context, tx *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(logger),
	}
	m.steps = []step{
		{version: "1.0.0", name: "Create lock tables", run: m.createLockTables},
		{version: "1.1.0", name: "Lock constraints and indexes", run: m.advancedIndexMgr.Apply},
	}
	return m
}

// MigrateAll applies every step that has not been recorded yet, each in its own transaction
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied schema versions", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	ran := 0
	for _, s := range m.steps {
		if applied[s.version] {
			continue
		}

		m.logger.Info("Applying schema migration", map[string]any{
			"version": s.version,
			"name":    s.name,
		})

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.run(ctx, tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:   s.version,
				Name:      s.name,
				AppliedAt: m.timeProvider.Now(),
			}).Error
		})
		if err != nil {
			m.logger.Error("Schema migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s (%s): %w", s.version, s.name, err)
		}
		ran++
	}

	if ran == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": CurrentSchemaVersion,
		})
		return nil
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
		"applied": ran,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// createLockTables creates the lock tables. The unique claim index on
// document_lock_entries comes from the model tags.
func (m *MigrationManager) createLockTables(ctx context.Context, tx *gorm.DB) error {
	return tx.WithContext(ctx).AutoMigrate(
		&model.DocumentLock{},
		&model.DocumentLockEntry{},
	)
}
