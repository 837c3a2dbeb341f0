// Package slots provides database operations for named storage blobs.
//
// # Usage
//
//	repo := slots.NewRepository(db)
//	err := repo.PutSlot("word-memory-app-data", blob)
package slots

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/wordbank/internal/entities"
)

// Repository handles all slot database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new slots repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSlot retrieves a slot by key.
func (r *Repository) GetSlot(key string) (*entities.StorageSlot, error) {
	var slot entities.StorageSlot
	err := r.db.Where("key = ?", key).First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// PutSlot creates or replaces the value stored under key.
func (r *Repository) PutSlot(key string, value []byte) error {
	slot := entities.StorageSlot{
		Key:   key,
		Value: value,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}

// ListKeys returns all stored slot keys.
func (r *Repository) ListKeys() ([]string, error) {
	var keys []string
	err := r.db.Model(&entities.StorageSlot{}).Order("key ASC").Pluck("key", &keys).Error
	return keys, err
}
