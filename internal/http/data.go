package http

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbank/internal/entities"
)

type DataController struct {
	store VocabularyStore
}

func NewDataController(store VocabularyStore) *DataController {
	return &DataController{store: store}
}

// Export returns the full vocabulary snapshot. With ?download=1 the
// response is sent as a file attachment.
// GET /api/data/export
func (dc *DataController) Export(c *gin.Context) {
	snap := dc.store.Snapshot()

	if c.Query("download") != "" {
		filename := fmt.Sprintf("wordbank-%s.json", time.Now().UTC().Format("20060102-150405"))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	c.JSON(http.StatusOK, snap)
}

// Import replaces all words and tags with the uploaded snapshot. The
// snapshot is saved before responding; when saving fails the data stays
// loaded but a 503 reports that it is not durable yet.
// POST /api/data/import
func (dc *DataController) Import(c *gin.Context) {
	var snap entities.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		respondBadRequest(c, "invalid snapshot: "+err.Error())
		return
	}

	for _, w := range snap.Words {
		if err := w.Validate(); err != nil {
			respondError(c, http.StatusBadRequest, "invalid_word", fmt.Sprintf("word %q: %v", w.ID, err), nil)
			return
		}
	}

	if err := dc.store.ReplaceAllData(snap); err != nil {
		log.Printf("Import saved in memory only: %v", err)
		respondError(c, http.StatusServiceUnavailable, "not_durable",
			"data imported but could not be saved", gin.H{"words": len(snap.Words), "tags": len(snap.Tags)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "data imported",
		"words":   len(snap.Words),
		"tags":    len(snap.Tags),
	})
}

// Clear deletes every word and tag.
// DELETE /api/data
func (dc *DataController) Clear(c *gin.Context) {
	dc.store.ClearAllData()
	respondSuccess(c, "all data cleared")
}
