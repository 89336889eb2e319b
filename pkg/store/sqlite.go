package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// blob is one persisted key.
type blob struct {
	Key       string `gorm:"column:name;primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (blob) TableName() string { return "blobs" }

// SQLite is a Persistence keeping blobs in a single SQLite table.
type SQLite struct {
	db   *gorm.DB
	path string
}

// NewSQLite opens (creating if needed) the database at path and migrates the
// blobs table. The path ":memory:" opens a private in-memory database.
func NewSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: sqlite: %w", ErrUnavailable, err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite open %s: %w", ErrUnavailable, path, err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err := db.AutoMigrate(&blob{}); err != nil {
		return nil, fmt.Errorf("%w: sqlite migrate: %w", ErrUnavailable, err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Read(ctx context.Context, key string) ([]byte, error) {
	var b blob
	err := s.db.WithContext(ctx).First(&b, "name = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: sqlite read %s: %w", ErrUnavailable, key, err)
	}
	return b.Value, nil
}

func (s *SQLite) Write(ctx context.Context, key string, data []byte) error {
	b := blob{Key: key, Value: data}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&b).Error
	if err != nil {
		return fmt.Errorf("%w: sqlite write %s: %w", ErrUnavailable, key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLite) Describe() string {
	return "sqlite " + s.path
}
