package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/storage"
	"github.com/mrlokans/wordbank/internal/vocabulary"
)

// fakeQueue records enqueued tasks.
type fakeQueue struct {
	mu    sync.Mutex
	tasks []backlite.Task
	err   error
}

func (q *fakeQueue) Enqueue(task backlite.Task) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return "", q.err
	}
	q.tasks = append(q.tasks, task)
	return "task-1", nil
}

func (q *fakeQueue) Status(_ context.Context, taskID string) (backlite.TaskStatus, error) {
	if taskID == "task-1" {
		return backlite.TaskStatusSuccess, nil
	}
	return backlite.TaskStatusNotFound, nil
}

// failingBackend rejects every write.
type failingBackend struct{}

func (failingBackend) Get(string) ([]byte, error) { return nil, storage.ErrNotFound }
func (failingBackend) Put(string, []byte) error   { return errors.New("disk full") }

func newTestStore(t *testing.T, backend storage.Backend) *vocabulary.Store {
	t.Helper()
	if backend == nil {
		backend = storage.NewMemoryBackend()
	}
	return vocabulary.New(
		vocabulary.WithPersister(storage.NewAdapter(backend, "")),
		vocabulary.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
}

func newTestRouter(t *testing.T, cfg RouterConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg.Store == nil {
		cfg.Store = newTestStore(t, nil)
	}
	return NewRouter(cfg)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func mustAddWord(t *testing.T, store *vocabulary.Store, term string, tagIDs ...string) entities.Word {
	t.Helper()
	w, err := store.AddWord(entities.WordInput{Term: term, Definition: "definition of " + term, TagIDs: tagIDs})
	require.NoError(t, err)
	return w
}
