package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	kvEntity "storefront/model/entity/kv"
)

// GormStore keeps entries in the storefront_kv table. Values must be valid JSON.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the storefront_kv table.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&kvEntity.Entry{}); err != nil {
		return nil, fmt.Errorf("kv: migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var e kvEntity.Entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("kv: get %s: %w", key, err)
	}
	return string(e.Value), nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	if !json.Valid([]byte(value)) {
		return fmt.Errorf("kv: set %s: value is not JSON", key)
	}
	e := kvEntity.Entry{Key: key, Value: datatypes.JSON(value)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("kv: set %s: %w", key, err)
	}
	return nil
}
