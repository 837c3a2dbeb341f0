package http

import (
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wordbank/internal/entities"
)

// VocabularyStore is the set of vocabulary operations the API exposes.
// *vocabulary.Store implements it.
type VocabularyStore interface {
	Words() []entities.Word
	Word(id string) (entities.Word, bool)
	AddWord(in entities.WordInput) (entities.Word, error)
	UpdateWord(w entities.Word) (bool, error)
	ModifyWord(id string, fn func(w *entities.Word) bool) (entities.Word, bool, error)
	DeleteWord(id string) bool

	Tags() []entities.Tag
	AddTag(in any) (entities.Tag, error)
	CreateTag(in any) (entities.Tag, bool, error)
	DeleteTag(id string) bool

	Search(query string) []entities.Word
	SearchQuery() string

	GenerateQuiz(cfg entities.QuizConfig) (entities.Quiz, error)
	CurrentQuiz() (entities.Quiz, bool)
	RecordQuizResults(incorrect []string) int
	RecordQuizCorrect(correct []string) int

	Snapshot() entities.Snapshot
	ReplaceAllData(s entities.Snapshot) error
	ClearAllData()
}

// TaskQueue enqueues background tasks. *tasks.Client implements it.
type TaskQueue interface {
	Enqueue(task backlite.Task) (string, error)
}
