package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Snapshot is the persisted primary state: words and tags only.
type Snapshot struct {
	Words []Word `json:"words"`
	Tags  []Tag  `json:"tags"`
}

// IsEmpty reports whether the snapshot carries no words and no tags.
func (s Snapshot) IsEmpty() bool {
	return len(s.Words) == 0 && len(s.Tags) == 0
}

// Clone returns a deep copy with non-nil slices.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		Words: make([]Word, len(s.Words)),
		Tags:  make([]Tag, len(s.Tags)),
	}
	for i, w := range s.Words {
		c.Words[i] = w.Clone()
	}
	copy(c.Tags, s.Tags)
	return c
}

// UnmarshalJSON ignores unknown top-level fields, treats missing words or
// tags as empty, and accepts tags as a list of objects, a list of names or
// an object keyed by tag id.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Words []Word          `json:"words"`
		Tags  json.RawMessage `json:"tags"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	tags, err := decodeTags(raw.Tags)
	if err != nil {
		return err
	}

	s.Words = raw.Words
	if s.Words == nil {
		s.Words = []Word{}
	}
	s.Tags = tags
	return nil
}

func decodeTags(data json.RawMessage) ([]Tag, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []Tag{}, nil
	}

	var items []any
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	case '{':
		var byID map[string]any
		if err := json.Unmarshal(data, &byID); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
		keys := make([]string, 0, len(byID))
		for k := range byID {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			item := byID[k]
			if obj, ok := item.(map[string]any); ok {
				if id, _ := obj["id"].(string); id == "" {
					obj["id"] = k
				}
			}
			items = append(items, item)
		}
	default:
		return nil, fmt.Errorf("decode tags: %w", ErrInvalidTagInput)
	}

	tags := make([]Tag, 0, len(items))
	for i, item := range items {
		tag, err := ToTag(item)
		if err != nil {
			return nil, fmt.Errorf("decode tag %d: %w", i, err)
		}
		if tag.ID == "" {
			tag.ID = NewTagID()
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
