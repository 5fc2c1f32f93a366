// Package persistence implements the project document store: a SQLite file
// mirroring the host application's tagging surface (categories, elements,
// views, tags) with transactional tag mutation.
package persistence

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Torchit1/Speed-Draft/internal/domain/shared"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/logger"
)

// Open opens an existing project document file. The file must have been
// initialized before; an uninitialized file yields a domain error telling
// the user to seed it.
func Open(path string, log *zap.Logger) (*ProjectStore, error) {
	db, err := openDB(path, log)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}

	var info projectInfoModel
	if err := db.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("UNINITIALIZED_PROJECT",
				fmt.Sprintf("project document %s has no project info; seed it first", path))
		}
		return nil, fmt.Errorf("failed to read project info: %w", err)
	}

	return &ProjectStore{db: db, hostVersion: info.HostVersion}, nil
}

// Create initializes a project document with the given host version,
// reusing the file if it already exists.
func Create(path string, hostVersion int, log *zap.Logger) (*ProjectStore, error) {
	db, err := openDB(path, log)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}

	info := projectInfoModel{ID: 1, HostVersion: hostVersion}
	if err := db.Save(&info).Error; err != nil {
		return nil, fmt.Errorf("failed to write project info: %w", err)
	}

	return &ProjectStore{db: db, hostVersion: hostVersion}, nil
}

// openDB opens the SQLite file with gorm logging routed through zap. SQL
// query tracing follows the application log level.
func openDB(path string, log *zap.Logger) (*gorm.DB, error) {
	gormLog := gormlogger.Default.LogMode(gormlogger.Silent)
	if log != nil {
		level := "warn"
		if log.Core().Enabled(zapcore.DebugLevel) {
			level = "debug"
		}
		gormLog = logger.NewGormLogger(log, logger.MapGormLogLevel(level))
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to open project document %s: %w", path, err)
	}
	return db, nil
}

// migrate creates or updates the project schema
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&projectInfoModel{},
		&categoryModel{},
		&elementModel{},
		&viewModel{},
		&viewElementModel{},
		&tagModel{},
		&tagElementRefModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate project schema: %w", err)
	}
	return nil
}
