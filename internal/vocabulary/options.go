package vocabulary

import (
	"math/rand/v2"
	"time"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/search"
)

// Persister saves and loads the primary-state snapshot.
// *storage.Adapter is the production implementation.
type Persister interface {
	Save(s entities.Snapshot)
	SaveSync(s entities.Snapshot) error
	Load() (entities.Snapshot, bool)
}

// Hook runs after every state-changing action with a copy of the new
// primary state.
type Hook func(s entities.Snapshot)

// SeedProvider returns a default dataset used when Load finds nothing.
type SeedProvider func() (entities.Snapshot, error)

type Option func(*Store)

// WithPersister saves the snapshot after every state-changing action.
// The save runs before any hook registered with WithHooks.
func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

// WithSearchEngine replaces the default linear search.
func WithSearchEngine(e search.Engine) Option {
	return func(s *Store) {
		s.engine = e
	}
}

// WithRand sets the random source used for quiz sampling.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.rng = r
	}
}

// WithIDGenerators replaces word and tag id generation.
func WithIDGenerators(wordID, tagID func() string) Option {
	return func(s *Store) {
		if wordID != nil {
			s.newWordID = wordID
		}
		if tagID != nil {
			s.newTagID = tagID
		}
	}
}

// WithClock sets the time source for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSeed loads a default dataset when no persisted data exists.
func WithSeed(p SeedProvider) Option {
	return func(s *Store) {
		s.seed = p
	}
}

// WithHooks appends after-mutation hooks, run in order.
func WithHooks(hooks ...Hook) Option {
	return func(s *Store) {
		s.hooks = append(s.hooks, hooks...)
	}
}
