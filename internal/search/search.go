// Package search implements the free-text and tag query language used to
// filter the vocabulary list.
//
// A query is split on whitespace into terms. Terms starting with '#' match
// words carrying a tag whose name contains the rest of the term; any other
// term matches words whose term or definition contains it. Matching is
// case-insensitive and a word is kept when it satisfies at least one term.
// An empty query keeps every word. Results preserve the input order.
package search

import (
	"strings"

	"github.com/mrlokans/wordbank/internal/entities"
)

// TagPrefix marks a query term as a tag term.
const TagPrefix = "#"

// Engine filters words by a query string.
type Engine interface {
	Search(query string, words []entities.Word, tags []entities.Tag) []entities.Word
}

// Linear scans the word list once per query. It needs no index and suits
// collections of up to a few thousand words.
type Linear struct{}

// NewLinear creates a linear scan engine.
func NewLinear() Linear {
	return Linear{}
}

// Search returns the words matching query, in their original order.
func (Linear) Search(query string, words []entities.Word, tags []entities.Tag) []entities.Word {
	q := ParseQuery(query)
	if q.IsEmpty() {
		out := make([]entities.Word, len(words))
		copy(out, words)
		return out
	}

	tagSet := q.MatchingTagIDs(tags)

	out := make([]entities.Word, 0, len(words))
	for _, w := range words {
		if q.Matches(w, tagSet) {
			out = append(out, w)
		}
	}
	return out
}

// Query is a parsed search query.
type Query struct {
	TextTerms []string // lowercased
	TagTerms  []string // lowercased, without the '#' prefix
}

// ParseQuery splits raw into text and tag terms.
func ParseQuery(raw string) Query {
	var q Query
	for _, term := range strings.Fields(strings.ToLower(raw)) {
		if strings.HasPrefix(term, TagPrefix) {
			q.TagTerms = append(q.TagTerms, strings.TrimPrefix(term, TagPrefix))
			continue
		}
		q.TextTerms = append(q.TextTerms, term)
	}
	return q
}

// IsEmpty reports whether the query has no terms at all.
func (q Query) IsEmpty() bool {
	return len(q.TextTerms) == 0 && len(q.TagTerms) == 0
}

// MatchingTagIDs returns the ids of tags whose name contains any tag term.
// Word tag ids that reference no existing tag never end up in the set.
func (q Query) MatchingTagIDs(tags []entities.Tag) map[string]struct{} {
	set := make(map[string]struct{})
	if len(q.TagTerms) == 0 {
		return set
	}
	for _, tag := range tags {
		name := strings.ToLower(tag.Name)
		for _, term := range q.TagTerms {
			if strings.Contains(name, term) {
				set[tag.ID] = struct{}{}
				break
			}
		}
	}
	return set
}

// Matches reports whether w satisfies at least one term. tagSet must come
// from MatchingTagIDs for the same query.
func (q Query) Matches(w entities.Word, tagSet map[string]struct{}) bool {
	if len(tagSet) > 0 && w.HasAnyTag(tagSet) {
		return true
	}
	if len(q.TextTerms) == 0 {
		return false
	}
	term := strings.ToLower(w.Term)
	def := strings.ToLower(w.Definition)
	for _, t := range q.TextTerms {
		if strings.Contains(term, t) || strings.Contains(def, t) {
			return true
		}
	}
	return false
}
