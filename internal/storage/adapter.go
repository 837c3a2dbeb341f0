// Package storage persists vocabulary snapshots to a single key/value slot.
//
// The Adapter owns encoding and failure handling; a Backend only moves
// opaque blobs. Backends can be swapped without touching the store:
//
//	adapter := storage.NewAdapter(storage.NewFileBackend("./vocabulary.json"), entities.SlotKeyVocabulary)
//	snapshot, ok := adapter.Load()
package storage

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/mrlokans/wordbank/internal/entities"
)

// Backend stores blobs by key.
type Backend interface {
	// Get returns ErrNotFound when nothing was stored under key.
	Get(key string) ([]byte, error)
	Put(key string, blob []byte) error
}

// Adapter encodes snapshots as JSON into one backend slot.
type Adapter struct {
	backend Backend
	key     string
}

// NewAdapter creates an adapter writing to key. An empty key falls back to
// entities.SlotKeyVocabulary.
func NewAdapter(backend Backend, key string) *Adapter {
	if key == "" {
		key = entities.SlotKeyVocabulary
	}
	return &Adapter{backend: backend, key: key}
}

// Key returns the slot key.
func (a *Adapter) Key() string {
	return a.key
}

// Save writes the snapshot, logging instead of returning any failure.
func (a *Adapter) Save(s entities.Snapshot) {
	if err := a.SaveSync(s); err != nil {
		log.Printf("[STORAGE] %v", err)
	}
}

// SaveSync writes the snapshot and reports a *WriteError on failure.
func (a *Adapter) SaveSync(s entities.Snapshot) error {
	blob, err := json.Marshal(persisted(s))
	if err != nil {
		return &WriteError{Key: a.key, Err: err}
	}
	if err := a.backend.Put(a.key, blob); err != nil {
		return &WriteError{Key: a.key, Err: err}
	}
	return nil
}

// Load reads the snapshot. It returns false when the slot is empty or the
// stored data cannot be read or decoded.
func (a *Adapter) Load() (entities.Snapshot, bool) {
	s, err := a.LoadSync()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[STORAGE] %v", err)
		}
		return entities.Snapshot{}, false
	}
	return s, true
}

// LoadSync reads the snapshot and reports a *ReadError on failure.
func (a *Adapter) LoadSync() (entities.Snapshot, error) {
	blob, err := a.backend.Get(a.key)
	if err != nil {
		return entities.Snapshot{}, &ReadError{Key: a.key, Err: err}
	}
	if len(blob) == 0 {
		return entities.Snapshot{}, &ReadError{Key: a.key, Err: ErrNotFound}
	}

	var s entities.Snapshot
	if err := json.Unmarshal(blob, &s); err != nil {
		return entities.Snapshot{}, &ReadError{Key: a.key, Err: err}
	}
	return s, nil
}

// persisted normalizes nil slices so the stored document always has both
// fields as arrays.
func persisted(s entities.Snapshot) entities.Snapshot {
	if s.Words == nil {
		s.Words = []entities.Word{}
	}
	if s.Tags == nil {
		s.Tags = []entities.Tag{}
	}
	return s
}
