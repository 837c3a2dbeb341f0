package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/tasks"
)

type WordsController struct {
	store     VocabularyStore
	taskQueue TaskQueue // nil when enrichment is unavailable
}

func NewWordsController(store VocabularyStore, taskQueue TaskQueue) *WordsController {
	return &WordsController{
		store:     store,
		taskQueue: taskQueue,
	}
}

// AddWordRequest is the request body for adding a word.
type AddWordRequest struct {
	Term       string   `json:"term"`
	Definition string   `json:"definition"`
	TagIDs     []string `json:"tagIds"`
	Notes      string   `json:"notes,omitempty"`
	AutoEnrich bool     `json:"autoEnrich,omitempty"`
}

// UpdateWordRequest replaces the editable fields of a word. Omitted
// counters and tags keep their current values.
type UpdateWordRequest struct {
	Term          string    `json:"term"`
	Definition    string    `json:"definition"`
	TagIDs        *[]string `json:"tagIds"`
	Notes         *string   `json:"notes"`
	Unfamiliarity *int      `json:"unfamiliarity"`
	CorrectStreak *int      `json:"correctStreak"`
}

// ListWords returns every word in insertion order.
// GET /api/words
func (wc *WordsController) ListWords(c *gin.Context) {
	words := wc.store.Words()
	c.JSON(http.StatusOK, gin.H{
		"words": words,
		"total": len(words),
	})
}

// GetWord returns a single word.
// GET /api/words/:id
func (wc *WordsController) GetWord(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	word, updated, err := wc.store.ModifyWord(id, func(w *entities.Word) bool {
		w.Term = req.Term
		w.Definition = req.Definition
		if req.TagIDs != nil {
			w.TagIDs = *req.TagIDs
		}
		if req.Notes != nil {
			w.Notes = *req.Notes
		}
		if req.Unfamiliarity != nil {
			w.Unfamiliarity = *req.Unfamiliarity
		}
		if req.CorrectStreak != nil {
			w.CorrectStreak = *req.CorrectStreak
		}
		return true
	})
	if err != nil {
		respondValidationError(c, err)
		return
	}
	if !updated {
		respondNotFound(c, "word")
		return
	}

	c.JSON(http.StatusOK, word)
}

// DeleteWord removes a word.
// DELETE /api/words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	if !wc.store.DeleteWord(id) {
		respondNotFound(c, "word")
		return
	}
	respondSuccess(c, "word deleted")
}

// EnrichWord queues a dictionary lookup that fills in the word's notes.
// POST /api/words/:id/enrich
func (wc *WordsController) EnrichWord(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	if wc.taskQueue == nil {
		respondError(c, http.StatusServiceUnavailable, "tasks_disabled", "task queue is not available", nil)
		return
	}
	if _, found := wc.store.Word(id); !found {
		respondNotFound(c, "word")
		return
	}

	taskID, err := wc.taskQueue.Enqueue(tasks.EnrichWordTask{WordID: id})
	if err != nil {
		respondInternalError(c, err, "enqueue word enrichment")
		return
	}
	respondAccepted(c, "enrichment queued", gin.H{"task_id": taskID})
}

// respondValidationError maps boundary validation errors to 400 responses.
func respondValidationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrEmptyTerm):
		respondError(c, http.StatusBadRequest, "empty_term", err.Error(), nil)
	case errors.Is(err, entities.ErrMissingDefinition):
		respondError(c, http.StatusBadRequest, "missing_definition", err.Error(), nil)
	case errors.Is(err, entities.ErrNegativeScore):
		respondError(c, http.StatusBadRequest, "negative_score", err.Error(), nil)
	case errors.Is(err, entities.ErrEmptyTagName):
		respondError(c, http.StatusBadRequest, "empty_tag_name", err.Error(), nil)
	case errors.Is(err, entities.ErrInvalidTagInput):
		respondError(c, http.StatusBadRequest, "invalid_tag", err.Error(), nil)
	default:
		respondInternalError(c, err, "validate input")
	}
}
