// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// ## Persistence Interfaces
//
//   - storage.Backend: Raw key/blob storage (internal/storage/adapter.go)
//   - vocabulary.Persister: Snapshot save/load used by the store (internal/vocabulary/options.go)
//
// ## Vocabulary Interfaces
//
//   - search.Engine: Query evaluation over words and tags (internal/search/search.go)
//   - http.VocabularyStore: Store operations used by the API (internal/http/stores.go)
//   - tasks.WordEnricher: Word reads/updates used by enrichment tasks (internal/tasks/enrich_word.go)
//   - tasks.SnapshotSource: Snapshot reads used by backup tasks (internal/tasks/backup.go)
//
// ## External Service Interfaces
//
//   - dictionary.Client: Word definitions (internal/dictionary/client.go)
//
// ## Background Work Interfaces
//
//   - http.TaskQueue, http.TaskStatuser: Task enqueueing and status (internal/http/stores.go, tasks.go)
//   - http.BackupStore, tasks.SnapshotWriter: Backup files (internal/http/backups.go)
//
// # Adding a New Storage Backend
//
// To keep the vocabulary somewhere else (e.g., a key/value service):
//
//  1. Implement storage.Backend
//
//     type RedisBackend struct {
//         client *redis.Client
//     }
//
//     func (b *RedisBackend) Get(key string) ([]byte, error)
//     func (b *RedisBackend) Put(key string, blob []byte) error
//
//     var _ storage.Backend = (*RedisBackend)(nil)
//
//     Get must return storage.ErrNotFound when nothing is stored under key.
//
//  2. Add a config.StorageBackend value and select it in entrypoint/storage.go
//
// # Adding a New Search Engine
//
// The default engine scans the word list. An indexed engine plugs in with
// vocabulary.WithSearchEngine:
//
//	type IndexedEngine struct { ... }
//
//	func (e *IndexedEngine) Search(query string, words []entities.Word, tags []entities.Tag) []entities.Word
//
//	store := vocabulary.New(vocabulary.WithSearchEngine(&IndexedEngine{}))
//
// It must follow the same query language (see the search package docs).
//
// # Adding a New Dictionary Provider
//
// To add a new word definition source:
//
//  1. Implement dictionary.Client in internal/dictionary/
//
//     type MerriamWebsterClient struct {
//         apiKey string
//     }
//
//     func (c *MerriamWebsterClient) Lookup(ctx context.Context, term string) (*LookupResult, error)
//     func (c *MerriamWebsterClient) Name() string
//
//     var _ Client = (*MerriamWebsterClient)(nil)
//
//  2. Configure in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
