package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	store VocabularyStore
}

func NewSearchController(store VocabularyStore) *SearchController {
	return &SearchController{store: store}
}

// Search filters words by free text and #tag terms.
// GET /api/search?q=
func (sc *SearchController) Search(c *gin.Context) {
	query := c.Query("q")
	words := sc.store.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"words": words,
		"total": len(words),
	})
}
