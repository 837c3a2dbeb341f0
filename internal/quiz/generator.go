// Package quiz selects quiz questions from the vocabulary.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mrlokans/wordbank/internal/entities"
)

// Candidates returns the words eligible for a quiz with cfg, in list order.
func Candidates(words []entities.Word, cfg entities.QuizConfig) []entities.Word {
	tagSet := make(map[string]struct{}, len(cfg.Tags))
	for _, id := range cfg.Tags {
		tagSet[id] = struct{}{}
	}

	out := make([]entities.Word, 0, len(words))
	for _, w := range words {
		if w.Unfamiliarity < cfg.Unfamiliarity {
			continue
		}
		if len(tagSet) > 0 && !w.HasAnyTag(tagSet) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Generate draws cfg.Count distinct words uniformly at random from the
// eligible candidates. The questions are deep copies.
func Generate(words []entities.Word, cfg entities.QuizConfig, rng *rand.Rand, now time.Time) (entities.Quiz, error) {
	if cfg.Count <= 0 {
		return entities.Quiz{}, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, cfg.Count)
	}
	if cfg.Unfamiliarity < 0 {
		return entities.Quiz{}, fmt.Errorf("%w: unfamiliarity must not be negative, got %d", ErrInvalidConfig, cfg.Unfamiliarity)
	}

	candidates := Candidates(words, cfg)
	if len(candidates) < cfg.Count {
		return entities.Quiz{}, &InsufficientCandidatesError{
			Available: len(candidates),
			Requested: cfg.Count,
		}
	}

	Shuffle(candidates, rng)

	questions := make([]entities.Word, cfg.Count)
	for i := range questions {
		questions[i] = candidates[i].Clone()
	}

	cfg.Tags = append([]string{}, cfg.Tags...)
	return entities.Quiz{
		Questions: questions,
		Config:    cfg,
		CreatedAt: now,
	}, nil
}

// Shuffle permutes words in place with a Fisher-Yates shuffle.
func Shuffle(words []entities.Word, rng *rand.Rand) {
	for i := len(words) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}
