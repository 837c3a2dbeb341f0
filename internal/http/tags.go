package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbank/internal/entities"
)

type TagsController struct {
	store VocabularyStore
}

func NewTagsController(store VocabularyStore) *TagsController {
	return &TagsController{store: store}
}

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color,omitempty"`
}

// GetAllTags returns all tags.
// GET /api/tags
func (tc *TagsController) GetAllTags(c *gin.Context) {
	c.JSON(http.StatusOK, tc.store.Tags())
}

// CreateTag creates a tag. A tag whose name matches an existing one
// ignoring case is returned with 200 instead of being created.
// POST /api/tags
func (tc *TagsController) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tag, created, err := tc.store.CreateTag(entities.Tag{Name: req.Name, Color: req.Color})
	if err != nil {
		respondValidationError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, tag)
		return
	}
	respondCreated(c, tag)
}

// DeleteTag removes a tag and detaches it from every word.
// DELETE /api/tags/:id
func (tc *TagsController) DeleteTag(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	if !tc.store.DeleteTag(id) {
		respondNotFound(c, "tag")
		return
	}
	respondSuccess(c, "tag deleted")
}
