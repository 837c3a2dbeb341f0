package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/quiz"
)

type QuizController struct {
	store VocabularyStore
}

func NewQuizController(store VocabularyStore) *QuizController {
	return &QuizController{store: store}
}

// GenerateQuizRequest configures quiz sampling.
type GenerateQuizRequest struct {
	Count         int      `json:"count"`
	Unfamiliarity int      `json:"unfamiliarity"`
	Tags          []string `json:"tags"`
}

// QuizResultsRequest reports the answers of a finished quiz.
type QuizResultsRequest struct {
	Incorrect []string `json:"incorrect"`
	Correct   []string `json:"correct"`
}

// GenerateQuiz samples a new quiz and makes it current.
// POST /api/quiz
func (qc *QuizController) GenerateQuiz(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	q, err := qc.store.GenerateQuiz(entities.QuizConfig{
		Count:         req.Count,
		Unfamiliarity: req.Unfamiliarity,
		Tags:          req.Tags,
	})

	var insufficient *quiz.InsufficientCandidatesError
	switch {
	case errors.As(err, &insufficient):
		respondError(c, http.StatusUnprocessableEntity, "insufficient_candidates", insufficient.Error(), gin.H{
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		})
		return
	case errors.Is(err, quiz.ErrInvalidConfig):
		respondError(c, http.StatusBadRequest, "invalid_config", err.Error(), nil)
		return
	case err != nil:
		respondInternalError(c, err, "generate quiz")
		return
	}

	respondCreated(c, q)
}

// GetCurrentQuiz returns the last generated quiz.
// GET /api/quiz
func (qc *QuizController) GetCurrentQuiz(c *gin.Context) {
	q, ok := qc.store.CurrentQuiz()
	if !ok {
		respondNotFound(c, "quiz")
		return
	}
	c.JSON(http.StatusOK, q)
}

// RecordResults raises the unfamiliarity of missed words and extends the
// streak of correct ones.
// POST /api/quiz/results
func (qc *QuizController) RecordResults(c *gin.Context) {
	var req QuizResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	incorrect := 0
	if len(req.Incorrect) > 0 {
		incorrect = qc.store.RecordQuizResults(req.Incorrect)
	}
	correct := 0
	if len(req.Correct) > 0 {
		correct = qc.store.RecordQuizCorrect(req.Correct)
	}

	c.JSON(http.StatusOK, gin.H{
		"incorrect": incorrect,
		"correct":   correct,
	})
}
