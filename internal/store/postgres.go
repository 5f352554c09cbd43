package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Blob is the single-table schema for the postgres driver: one row per
// logical key, whole snapshot upserted on every Set.
type Blob struct {
	Key   string `gorm:"primaryKey;type:varchar(64)"`
	Value []byte `gorm:"type:jsonb;not null"`
}

// PostgresStore keeps register snapshots in a jsonb blob table via GORM.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore establishes a GORM connection backed by pgx and runs
// AutoMigrate to create the blob table.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, fmt.Errorf("store: migrate blobs: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var b Blob
	err := s.db.WithContext(ctx).First(&b, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b.Value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, blob []byte) error {
	b := Blob{Key: key, Value: blob}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&b).Error
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var _ BlobStore = (*PostgresStore)(nil)
