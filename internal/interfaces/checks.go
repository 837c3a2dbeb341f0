package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wordbank/internal/backup"
	"github.com/mrlokans/wordbank/internal/database"
	"github.com/mrlokans/wordbank/internal/dictionary"
	"github.com/mrlokans/wordbank/internal/http"
	"github.com/mrlokans/wordbank/internal/search"
	"github.com/mrlokans/wordbank/internal/storage"
	"github.com/mrlokans/wordbank/internal/tasks"
	"github.com/mrlokans/wordbank/internal/vocabulary"
)

// =============================================================================
// Persistence
// =============================================================================

// Backend implementations
var _ storage.Backend = (*storage.MemoryBackend)(nil)
var _ storage.Backend = (*storage.FileBackend)(nil)
var _ storage.Backend = (*database.Database)(nil)

// Persister implementations
var _ vocabulary.Persister = (*storage.Adapter)(nil)

// =============================================================================
// Vocabulary
// =============================================================================

var _ search.Engine = search.Linear{}

var _ http.VocabularyStore = (*vocabulary.Store)(nil)
var _ tasks.WordEnricher = (*vocabulary.Store)(nil)
var _ tasks.SnapshotSource = (*vocabulary.Store)(nil)

// =============================================================================
// External Services
// =============================================================================

// DictionaryClient implementations
var _ dictionary.Client = (*dictionary.FreeDictionaryClient)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ http.TaskQueue = (*tasks.Client)(nil)
var _ http.TaskStatuser = (*tasks.Client)(nil)
var _ http.BackupStore = (*backup.Writer)(nil)
var _ tasks.SnapshotWriter = (*backup.Writer)(nil)
var _ http.Pinger = (*database.Database)(nil)
var _ http.SlotLister = (*database.Database)(nil)
