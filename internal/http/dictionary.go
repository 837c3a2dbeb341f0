package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbank/internal/dictionary"
)

type DictionaryController struct {
	client dictionary.Client
}

func NewDictionaryController(client dictionary.Client) *DictionaryController {
	return &DictionaryController{client: client}
}

// Lookup suggests definitions for a term.
// GET /api/dictionary/:term
func (dc *DictionaryController) Lookup(c *gin.Context) {
	term, ok := requireParam(c, "term")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	result, err := dc.client.Lookup(ctx, term)
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		respondNotFound(c, "term")
		return
	case err != nil:
		respondError(c, http.StatusBadGateway, "lookup_failed", "dictionary lookup failed: "+err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     result,
		"suggestion": result.Suggestion(),
	})
}
