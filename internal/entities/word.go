package entities

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTerm         = errors.New("word term is required")
	ErrMissingDefinition = errors.New("word definition is required")
	ErrNegativeScore     = errors.New("word unfamiliarity must not be negative")
)

// Word is a single vocabulary entry.
type Word struct {
	ID            string     `json:"id"`
	Term          string     `json:"term"`
	Definition    string     `json:"definition"`
	TagIDs        []string   `json:"tagIds"`
	Unfamiliarity int        `json:"unfamiliarity"`
	Notes         string     `json:"notes,omitempty"`
	CorrectStreak int        `json:"correctStreak"`
	LastTestedAt  *time.Time `json:"lastTestedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// WordInput carries the caller-supplied fields of a new word.
type WordInput struct {
	Term       string   `json:"term"`
	Definition string   `json:"definition"`
	TagIDs     []string `json:"tagIds"`
	Notes      string   `json:"notes"`
}

// Validate checks the required fields of a new word.
func (in WordInput) Validate() error {
	if strings.TrimSpace(in.Term) == "" {
		return ErrEmptyTerm
	}
	if strings.TrimSpace(in.Definition) == "" {
		return ErrMissingDefinition
	}
	return nil
}

// Validate checks the required fields of a full word record.
func (w Word) Validate() error {
	if w.Unfamiliarity < 0 {
		return ErrNegativeScore
	}
	return WordInput{Term: w.Term, Definition: w.Definition}.Validate()
}

// Clone returns a deep copy of the word.
func (w Word) Clone() Word {
	c := w
	c.TagIDs = append([]string{}, w.TagIDs...)
	if w.LastTestedAt != nil {
		t := *w.LastTestedAt
		c.LastTestedAt = &t
	}
	return c
}

// HasAnyTag reports whether the word carries at least one of the given tag ids.
func (w Word) HasAnyTag(ids map[string]struct{}) bool {
	for _, id := range w.TagIDs {
		if _, ok := ids[id]; ok {
			return true
		}
	}
	return false
}

// HasTag reports whether the word carries the tag id.
func (w Word) HasTag(id string) bool {
	for _, t := range w.TagIDs {
		if t == id {
			return true
		}
	}
	return false
}

// UniqueTagIDs drops empty and repeated ids, keeping first occurrence order.
func UniqueTagIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// UnmarshalJSON accepts the field names used by older snapshots
// ("text", "tags", "familiarityScore") alongside the current ones.
func (w *Word) UnmarshalJSON(data []byte) error {
	type alias Word
	aux := struct {
		*alias
		Text             *string  `json:"text"`
		Tags             []string `json:"tags"`
		FamiliarityScore *int     `json:"familiarityScore"`
	}{alias: (*alias)(w)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if w.Term == "" && aux.Text != nil {
		w.Term = *aux.Text
	}
	if w.TagIDs == nil && aux.Tags != nil {
		w.TagIDs = aux.Tags
	}
	if w.Unfamiliarity == 0 && aux.FamiliarityScore != nil {
		w.Unfamiliarity = *aux.FamiliarityScore
	}
	if w.Unfamiliarity < 0 {
		w.Unfamiliarity = 0
	}
	if w.TagIDs == nil {
		w.TagIDs = []string{}
	}
	return nil
}
