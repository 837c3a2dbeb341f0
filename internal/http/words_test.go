package http

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/tasks"
)

type wordsResponse struct {
	Words []entities.Word `json:"words"`
	Total int             `json:"total"`
}

func TestWordsController_ListWords(t *testing.T) {
	t.Run("returns empty list when no words exist", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodGet, "/api/words", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"words":[],"total":0}`, w.Body.String())
	})

	t.Run("returns words in insertion order", func(t *testing.T) {
		store := newTestStore(t, nil)
		a := mustAddWord(t, store, "alpha")
		b := mustAddWord(t, store, "beta")
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodGet, "/api/words", nil)

		resp := decode[wordsResponse](t, w)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, a.ID, resp.Words[0].ID)
		assert.Equal(t, b.ID, resp.Words[1].ID)
	})
}

func TestWordsController_AddWord(t *testing.T) {
	t.Run("creates a word", func(t *testing.T) {
		store := newTestStore(t, nil)
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodPost, "/api/words", map[string]any{
			"term":       "ubiquitous",
			"definition": "everywhere",
			"tagIds":     []string{"t1", "t1"},
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		word := decode[entities.Word](t, w)
		assert.NotEmpty(t, word.ID)
		assert.Equal(t, "ubiquitous", word.Term)
		assert.Equal(t, []string{"t1"}, word.TagIDs)
		assert.Zero(t, word.Unfamiliarity)
		assert.Len(t, store.Words(), 1)
	})

	t.Run("rejects blank definition", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPost, "/api/words", map[string]any{"term": "x", "definition": " "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing definition", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPost, "/api/words", map[string]any{"term": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing_definition", decode[ErrorResponse](t, w).Code)
	})

	t.Run("rejects blank term", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPost, "/api/words", map[string]any{"term": "  ", "definition": "d"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "empty_term", decode[ErrorResponse](t, w).Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPost, "/api/words", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("queues enrichment when asked", func(t *testing.T) {
		queue := &fakeQueue{}
		router := newTestRouter(t, RouterConfig{TaskQueue: queue})

		w := doRequest(t, router, http.MethodPost, "/api/words", map[string]any{
			"term": "commute", "definition": "travel", "autoEnrich": true,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		word := decode[entities.Word](t, w)
		require.Len(t, queue.tasks, 1)
		assert.Equal(t, tasks.EnrichWordTask{WordID: word.ID}, queue.tasks[0])
	})
}

func TestWordsController_GetWord(t *testing.T) {
	store := newTestStore(t, nil)
	word := mustAddWord(t, store, "alpha")
	router := newTestRouter(t, RouterConfig{Store: store})

	w := doRequest(t, router, http.MethodGet, "/api/words/"+word.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, word.ID, decode[entities.Word](t, w).ID)

	w = doRequest(t, router, http.MethodGet, "/api/words/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWordsController_UpdateWord(t *testing.T) {
	t.Run("updates fields and keeps counters", func(t *testing.T) {
		store := newTestStore(t, nil)
		word := mustAddWord(t, store, "alpha", "t1")
		store.RecordQuizResults([]string{word.ID})
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodPut, "/api/words/"+word.ID, map[string]any{
			"term":       "alpha prime",
			"definition": "updated",
			"notes":      "note",
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decode[entities.Word](t, w)
		assert.Equal(t, "alpha prime", updated.Term)
		assert.Equal(t, "note", updated.Notes)
		assert.Equal(t, 1, updated.Unfamiliarity)
		assert.Equal(t, []string{"t1"}, updated.TagIDs)
	})

	t.Run("sets counters explicitly", func(t *testing.T) {
		store := newTestStore(t, nil)
		word := mustAddWord(t, store, "alpha", "t1")
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodPut, "/api/words/"+word.ID, map[string]any{
			"term":          "alpha",
			"definition":    "d",
			"tagIds":        []string{},
			"unfamiliarity": 4,
		})

		require.Equal(t, http.StatusOK, w.Code)
		updated := decode[entities.Word](t, w)
		assert.Equal(t, 4, updated.Unfamiliarity)
		assert.Empty(t, updated.TagIDs)
	})

	t.Run("rejects negative unfamiliarity", func(t *testing.T) {
		store := newTestStore(t, nil)
		word := mustAddWord(t, store, "alpha")
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodPut, "/api/words/"+word.ID, map[string]any{
			"term": "alpha", "definition": "d", "unfamiliarity": -1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "negative_score", decode[ErrorResponse](t, w).Code)
	})

	t.Run("returns 404 for unknown word", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodPut, "/api/words/missing", map[string]any{"term": "x", "definition": "y"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("edits do not drop concurrent quiz results", func(t *testing.T) {
		store := newTestStore(t, nil)
		word := mustAddWord(t, store, "alpha")
		router := newTestRouter(t, RouterConfig{Store: store})

		const n = 20
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				w := doRequest(t, router, http.MethodPost, "/api/quiz/results", map[string]any{"incorrect": []string{word.ID}})
				assert.Equal(t, http.StatusOK, w.Code)
			}()
			go func() {
				defer wg.Done()
				w := doRequest(t, router, http.MethodPut, "/api/words/"+word.ID, map[string]any{"term": "alpha", "definition": "edited"})
				assert.Equal(t, http.StatusOK, w.Code)
			}()
		}
		wg.Wait()

		got, _ := store.Word(word.ID)
		assert.Equal(t, n, got.Unfamiliarity)
		assert.Equal(t, "edited", got.Definition)
	})
}

func TestWordsController_DeleteWord(t *testing.T) {
	store := newTestStore(t, nil)
	word := mustAddWord(t, store, "alpha")
	router := newTestRouter(t, RouterConfig{Store: store})

	w := doRequest(t, router, http.MethodDelete, "/api/words/"+word.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Words())

	w = doRequest(t, router, http.MethodDelete, "/api/words/"+word.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWordsController_EnrichWord(t *testing.T) {
	t.Run("queues a task", func(t *testing.T) {
		store := newTestStore(t, nil)
		word := mustAddWord(t, store, "alpha")
		queue := &fakeQueue{}
		router := newTestRouter(t, RouterConfig{Store: store, TaskQueue: queue})

		w := doRequest(t, router, http.MethodPost, "/api/words/"+word.ID+"/enrich", nil)

		assert.Equal(t, http.StatusAccepted, w.Code)
		require.Len(t, queue.tasks, 1)
	})

	t.Run("unavailable without a task queue", func(t *testing.T) {
		store := newTestStore(t, nil)
		word := mustAddWord(t, store, "alpha")
		router := newTestRouter(t, RouterConfig{Store: store})

		w := doRequest(t, router, http.MethodPost, "/api/words/"+word.ID+"/enrich", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("unknown word", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{TaskQueue: &fakeQueue{}})

		w := doRequest(t, router, http.MethodPost, "/api/words/missing/enrich", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
