package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/wordbank/internal/entities"
)

func fixtures() ([]entities.Word, []entities.Tag) {
	tags := []entities.Tag{
		{ID: "t1", Name: "TOEIC core"},
		{ID: "t2", Name: "Academic"},
		{ID: "t3", Name: "Programming"},
	}
	words := []entities.Word{
		{ID: "w1", Term: "ubiquitous", Definition: "present everywhere", TagIDs: []string{"t1", "t2"}},
		{ID: "w2", Term: "photosynthesis", Definition: "plants turning light into energy", TagIDs: []string{"t2"}},
		{ID: "w3", Term: "polymorphism", Definition: "many forms", TagIDs: []string{"t3"}},
		{ID: "w4", Term: "Serendipity", Definition: "a happy accident", TagIDs: []string{"t1", "gone"}},
		{ID: "w5", Term: "orphan", Definition: "refers to a deleted tag", TagIDs: []string{"gone"}},
	}
	return words, tags
}

func ids(words []entities.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestLinear_Search(t *testing.T) {
	words, tags := fixtures()
	engine := NewLinear()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "", []string{"w1", "w2", "w3", "w4", "w5"}},
		{"whitespace query returns all", "   \t\n ", []string{"w1", "w2", "w3", "w4", "w5"}},
		{"text term matches term", "poly", []string{"w3"}},
		{"text term matches definition", "light", []string{"w2"}},
		{"text term is case-insensitive", "SERENDIP", []string{"w4"}},
		{"tag term matches tag name substring", "#core", []string{"w1", "w4"}},
		{"tag term is case-insensitive", "#CoRe", []string{"w1", "w4"}},
		{"multiple terms are ORed", "poly #academic", []string{"w1", "w2", "w3"}},
		{"result keeps original order", "serendipity ubiquitous", []string{"w1", "w4"}},
		{"dangling tag ids never match", "#gone", []string{}},
		{"bare hash matches any existing tag", "#", []string{"w1", "w2", "w3", "w4"}},
		{"no matches", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Search(tt.query, words, tags)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestLinear_SearchEmptyReturnsCopy(t *testing.T) {
	words, tags := fixtures()

	got := NewLinear().Search("", words, tags)
	got[0].Term = "changed"

	assert.Equal(t, "ubiquitous", words[0].Term)
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery("  Foo  #Bar baz\t#qux ")

	assert.Equal(t, []string{"foo", "baz"}, q.TextTerms)
	assert.Equal(t, []string{"bar", "qux"}, q.TagTerms)
	assert.False(t, q.IsEmpty())
	assert.True(t, ParseQuery("   ").IsEmpty())
}
