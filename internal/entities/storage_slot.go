package entities

import (
	"time"
)

// StorageSlot is a named blob in the SQLite backend.
type StorageSlot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     []byte    `gorm:"type:blob" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StorageSlot) TableName() string {
	return "storage_slots"
}

// Known slot keys
const (
	SlotKeyVocabulary = "word-memory-app-data"
)
