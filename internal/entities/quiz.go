package entities

import "time"

// QuizConfig holds the parameters a quiz was generated with.
type QuizConfig struct {
	Count         int      `json:"count"`
	Unfamiliarity int      `json:"unfamiliarity"` // inclusive minimum
	Tags          []string `json:"tags"`
}

// Quiz is a point-in-time copy of the selected words.
type Quiz struct {
	Questions []Word     `json:"questions"`
	Config    QuizConfig `json:"config"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Clone returns a deep copy of the quiz.
func (q Quiz) Clone() Quiz {
	c := Quiz{
		Questions: make([]Word, len(q.Questions)),
		Config:    q.Config,
		CreatedAt: q.CreatedAt,
	}
	c.Config.Tags = append([]string{}, q.Config.Tags...)
	for i, w := range q.Questions {
		c.Questions[i] = w.Clone()
	}
	return c
}
