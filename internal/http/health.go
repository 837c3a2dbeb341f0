package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks a storage connection. *database.Database implements it.
type Pinger interface {
	Ping() error
}

// SlotLister lists the storage slots that hold data. *database.Database
// implements it; the health check reports them when the database does.
type SlotLister interface {
	Keys() ([]string, error)
}

// VocabularyStats summarises the loaded vocabulary.
type VocabularyStats struct {
	Words       int    `json:"words"`
	Tags        int    `json:"tags"`
	SearchQuery string `json:"search_query,omitempty"`
	QuizActive  bool   `json:"quiz_active"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Time       string            `json:"time"`
	Version    string            `json:"version,omitempty"`
	Checks     map[string]string `json:"checks"`
	Vocabulary *VocabularyStats  `json:"vocabulary,omitempty"`
}

type HealthController struct {
	db      Pinger
	store   VocabularyStore
	version string
}

// NewHealthController creates a health controller. db is nil for storage
// backends without a connection.
func NewHealthController(db Pinger, store VocabularyStore, version string) *HealthController {
	return &HealthController{db: db, store: store, version: version}
}

// Status reports storage connectivity and vocabulary counts.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	response := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  map[string]string{"database": h.pingDatabase()},
	}
	if response.Checks["database"] != "ok" && h.db != nil {
		response.Status = "unhealthy"
	} else if lister, ok := h.db.(SlotLister); ok {
		response.Checks["storage_slots"] = listSlots(lister)
	}

	if h.store != nil {
		stats := h.vocabularyStats()
		response.Vocabulary = &stats
		response.Checks["vocabulary"] = fmt.Sprintf("%d words, %d tags", stats.Words, stats.Tags)
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.IndentedJSON(statusCode, response)
}

func (h *HealthController) pingDatabase() string {
	if h.db == nil {
		return "not configured"
	}
	if err := h.db.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func (h *HealthController) vocabularyStats() VocabularyStats {
	_, quizActive := h.store.CurrentQuiz()
	return VocabularyStats{
		Words:       len(h.store.Words()),
		Tags:        len(h.store.Tags()),
		SearchQuery: h.store.SearchQuery(),
		QuizActive:  quizActive,
	}
}

func listSlots(lister SlotLister) string {
	keys, err := lister.Keys()
	if err != nil {
		return "error: " + err.Error()
	}
	if len(keys) == 0 {
		return "empty"
	}
	return strings.Join(keys, ", ")
}
