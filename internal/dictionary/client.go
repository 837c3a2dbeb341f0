// Package dictionary looks up suggested definitions for new words.
package dictionary

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when the provider has no entry for a term.
var ErrNotFound = errors.New("term not found")

// Definition is one sense of a term.
type Definition struct {
	PartOfSpeech string `json:"partOfSpeech"`
	Text         string `json:"definition"`
	Example      string `json:"example,omitempty"`
}

// LookupResult contains the result of a dictionary lookup.
type LookupResult struct {
	Term          string       `json:"term"`
	Pronunciation string       `json:"pronunciation,omitempty"`
	AudioURL      string       `json:"audioUrl,omitempty"`
	Definitions   []Definition `json:"definitions"`
	Source        string       `json:"source"`
}

// Suggestion returns the first definition text, or "" when there is none.
func (r *LookupResult) Suggestion() string {
	if r == nil || len(r.Definitions) == 0 {
		return ""
	}
	return r.Definitions[0].Text
}

// Note builds a short study note from the pronunciation, the first part of
// speech and the first example found. It returns "" when none are known.
func (r *LookupResult) Note() string {
	if r == nil {
		return ""
	}
	var parts []string
	if r.Pronunciation != "" {
		parts = append(parts, r.Pronunciation)
	}
	for _, d := range r.Definitions {
		if d.PartOfSpeech != "" {
			parts = append(parts, d.PartOfSpeech)
			break
		}
	}
	for _, d := range r.Definitions {
		if d.Example != "" {
			parts = append(parts, "e.g. "+d.Example)
			break
		}
	}
	return strings.Join(parts, "; ")
}

// Client defines the interface for dictionary API providers.
type Client interface {
	Lookup(ctx context.Context, term string) (*LookupResult, error)
	Name() string
}
