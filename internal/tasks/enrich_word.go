package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wordbank/internal/dictionary"
	"github.com/mrlokans/wordbank/internal/entities"
)

// WordEnricher reads words and changes them in place in the vocabulary store.
type WordEnricher interface {
	Word(id string) (entities.Word, bool)
	Words() []entities.Word
	ModifyWord(id string, fn func(w *entities.Word) bool) (entities.Word, bool, error)
}

// EnrichWordTask fills in the notes of a single word from the dictionary.
type EnrichWordTask struct {
	WordID string `json:"word_id"`
}

func (t EnrichWordTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_word",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// EnrichWordProcessor creates a processor for word enrichment. Words that
// already have notes, or were deleted meanwhile, are skipped.
func EnrichWordProcessor(store WordEnricher, dictClient dictionary.Client) backlite.QueueProcessor[EnrichWordTask] {
	return func(ctx context.Context, task EnrichWordTask) error {
		word, ok := store.Word(task.WordID)
		if !ok {
			log.Printf("[TASK] Word %s no longer exists, skipping enrichment", task.WordID)
			return nil
		}

		enriched, err := enrichWord(ctx, store, dictClient, word)
		if err != nil {
			return err
		}
		if enriched {
			log.Printf("[TASK] Enriched word %q", word.Term)
		}
		return nil
	}
}

func NewEnrichWordQueue(store WordEnricher, dictClient dictionary.Client) backlite.Queue {
	return backlite.NewQueue(EnrichWordProcessor(store, dictClient))
}

// EnrichMissingNotesTask enriches every word without notes.
type EnrichMissingNotesTask struct{}

func (t EnrichMissingNotesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_missing_notes",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func EnrichMissingNotesProcessor(store WordEnricher, dictClient dictionary.Client) backlite.QueueProcessor[EnrichMissingNotesTask] {
	return func(ctx context.Context, task EnrichMissingNotesTask) error {
		var enriched, failed, total int
		for _, word := range store.Words() {
			if word.Notes != "" {
				continue
			}
			total++

			select {
			case <-ctx.Done():
				log.Printf("[TASK] Context cancelled, enriched %d words, %d failed", enriched, failed)
				return ctx.Err()
			default:
			}

			ok, err := enrichWord(ctx, store, dictClient, word)
			if err != nil {
				log.Printf("[TASK] %v", err)
				failed++
				continue
			}
			if ok {
				enriched++
			}
		}

		log.Printf("[TASK] Enriched %d words, %d failed out of %d without notes", enriched, failed, total)
		return nil
	}
}

func NewEnrichMissingNotesQueue(store WordEnricher, dictClient dictionary.Client) backlite.Queue {
	return backlite.NewQueue(EnrichMissingNotesProcessor(store, dictClient))
}

// enrichWord looks word up and stores a note when it has none. It reports
// whether the word was updated.
func enrichWord(ctx context.Context, store WordEnricher, dictClient dictionary.Client, word entities.Word) (bool, error) {
	if word.Notes != "" {
		return false, nil
	}

	result, err := dictClient.Lookup(ctx, word.Term)
	if err != nil {
		return false, fmt.Errorf("lookup word %q: %w", word.Term, err)
	}

	note := result.Note()
	if note == "" {
		return false, nil
	}

	// The lookup can take a while; only fill notes nobody wrote in the meantime.
	_, updated, err := store.ModifyWord(word.ID, func(w *entities.Word) bool {
		if w.Notes != "" {
			return false
		}
		w.Notes = note
		return true
	})
	if err != nil {
		return false, fmt.Errorf("update word %q: %w", word.Term, err)
	}
	return updated, nil
}
