package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a non-positive count or a negative threshold.
var ErrInvalidConfig = errors.New("invalid quiz config")

// InsufficientCandidatesError is returned when fewer words match the quiz
// filters than the requested question count.
type InsufficientCandidatesError struct {
	Available int
	Requested int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("only %d candidates available, %d requested", e.Available, e.Requested)
}
