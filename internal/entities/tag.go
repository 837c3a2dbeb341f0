package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTagName    = errors.New("tag name is required")
	ErrInvalidTagInput = errors.New("tag input must be a name or a tag object")
)

// Tag is a category words can be filed under.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// ToTag converts a tag name or tag object into a Tag. The id is kept as
// given and may be empty; callers that store the tag assign one.
func ToTag(input any) (Tag, error) {
	var tag Tag

	switch v := input.(type) {
	case string:
		tag = Tag{Name: v}
	case Tag:
		tag = v
	case *Tag:
		if v == nil {
			return Tag{}, ErrInvalidTagInput
		}
		tag = *v
	case map[string]any:
		id, _ := v["id"].(string)
		name, _ := v["name"].(string)
		color, _ := v["color"].(string)
		tag = Tag{ID: id, Name: name, Color: color}
	default:
		return Tag{}, fmt.Errorf("%w: got %T", ErrInvalidTagInput, input)
	}

	tag.ID = strings.TrimSpace(tag.ID)
	tag.Name = strings.TrimSpace(tag.Name)
	if tag.Name == "" {
		return Tag{}, ErrEmptyTagName
	}
	return tag, nil
}

// SameName compares tag names case-insensitively.
func (t Tag) SameName(name string) bool {
	return strings.EqualFold(t.Name, strings.TrimSpace(name))
}
