package entities

import "github.com/google/uuid"

const (
	WordIDPrefix = "word-"
	TagIDPrefix  = "tag-"
)

// NewWordID returns a fresh random word identifier.
func NewWordID() string {
	return WordIDPrefix + uuid.NewString()
}

// NewTagID returns a fresh random tag identifier.
func NewTagID() string {
	return TagIDPrefix + uuid.NewString()
}
