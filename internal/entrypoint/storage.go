package entrypoint

import (
	"fmt"
	"log"

	"github.com/mrlokans/wordbank/internal/config"
	"github.com/mrlokans/wordbank/internal/database"
	"github.com/mrlokans/wordbank/internal/seed"
	"github.com/mrlokans/wordbank/internal/storage"
	"github.com/mrlokans/wordbank/internal/vocabulary"
)

// Storage is a loaded vocabulary store together with the resources behind it.
type Storage struct {
	Store *vocabulary.Store

	// DB is set only for the sqlite backend.
	DB *database.Database
}

// Close releases the database, if any.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// OpenStorage builds the configured backend, creates the store on top of it
// and loads the persisted vocabulary.
func OpenStorage(cfg *config.Config, opts ...vocabulary.Option) (*Storage, error) {
	backend, db, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	adapter := storage.NewAdapter(backend, cfg.Storage.Key)
	options := []vocabulary.Option{vocabulary.WithPersister(adapter)}
	if cfg.Demo.Enabled && seed.HasDefault() {
		options = append(options, vocabulary.WithSeed(seed.Default))
	}
	options = append(options, opts...)

	store := vocabulary.New(options...)
	if store.Load() {
		log.Printf("[STORE] Loaded %d words and %d tags from %s storage", len(store.Words()), len(store.Tags()), cfg.Storage.Backend)
	} else {
		log.Printf("[STORE] No saved vocabulary in %s storage, starting with %d words", cfg.Storage.Backend, len(store.Words()))
	}

	return &Storage{Store: store, DB: db}, nil
}

func openBackend(cfg *config.Config) (storage.Backend, *database.Database, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite, "":
		db, err := database.NewDatabase(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		return db, db, nil
	case config.StorageBackendFile:
		return storage.NewFileBackend(cfg.Storage.FilePath), nil, nil
	case config.StorageBackendMemory:
		log.Printf("WARNING: memory storage selected, the vocabulary will not survive a restart")
		return storage.NewMemoryBackend(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
