// Package database provides the SQLite storage backend.
//
// The vocabulary is persisted as one JSON blob per slot key in the
// storage_slots table. Database implements storage.Backend so it can be
// handed to storage.NewAdapter:
//
//	db, err := database.NewDatabase("./wordbank.db")
//	adapter := storage.NewAdapter(db, entities.SlotKeyVocabulary)
//
// Row-level access lives in the slots sub-package.
package database
