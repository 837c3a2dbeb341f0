package http

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordbank/internal/entities"
)

func TestTagsController_GetAllTags(t *testing.T) {
	t.Run("returns empty list when no tags exist", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodGet, "/api/tags", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("returns existing tags", func(t *testing.T) {
		store := newTestStore(t, nil)
		_, err := store.AddTag("fiction")
		require.NoError(t, err)
		_, err = store.AddTag("science")
		require.NoError(t, err)
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodGet, "/api/tags", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]entities.Tag](t, w), 2)
	})
}

func TestTagsController_CreateTag(t *testing.T) {
	t.Run("creates a new tag", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPost, "/api/tags", map[string]string{"name": "Foo", "color": "#4287f5"})

		require.Equal(t, http.StatusCreated, w.Code)
		tag := decode[entities.Tag](t, w)
		assert.NotEmpty(t, tag.ID)
		assert.Equal(t, "Foo", tag.Name)
		assert.Equal(t, "#4287f5", tag.Color)
	})

	t.Run("returns existing tag for same name in other case", func(t *testing.T) {
		store := newTestStore(t, nil)
		router := newTestRouter(t, RouterConfig{Store: store})

		first := doRequest(t, router, http.MethodPost, "/api/tags", map[string]string{"name": "Foo"})
		second := doRequest(t, router, http.MethodPost, "/api/tags", map[string]string{"name": "foo"})

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, decode[entities.Tag](t, first).ID, decode[entities.Tag](t, second).ID)
		assert.Len(t, store.Tags(), 1)
	})

	t.Run("reports creation once under concurrent requests", func(t *testing.T) {
		store := newTestStore(t, nil)
		router := newTestRouter(t, RouterConfig{Store: store})

		const n = 20
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)
		for i := 0; i < n; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				w := doRequest(t, router, http.MethodPost, "/api/tags", map[string]string{"name": "Travel"})
				if w.Code == http.StatusCreated {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
			go func(i int) {
				defer wg.Done()
				w := doRequest(t, router, http.MethodPost, "/api/tags", map[string]string{"name": fmt.Sprintf("other-%d", i)})
				assert.Equal(t, http.StatusCreated, w.Code)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, created)
		assert.Len(t, store.Tags(), n+1)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPost, "/api/tags", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPost, "/api/tags", map[string]string{"name": "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "empty_tag_name", decode[ErrorResponse](t, w).Code)
	})
}

func TestTagsController_DeleteTag(t *testing.T) {
	t.Run("removes tag from words", func(t *testing.T) {
		store := newTestStore(t, nil)
		tag, err := store.AddTag("core")
		require.NoError(t, err)
		word := mustAddWord(t, store, "alpha", tag.ID)
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodDelete, "/api/tags/"+tag.ID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, store.Tags())
		updated, _ := store.Word(word.ID)
		assert.Empty(t, updated.TagIDs)
	})

	t.Run("returns 404 for unknown tag", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodDelete, "/api/tags/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
