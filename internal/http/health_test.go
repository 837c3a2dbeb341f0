package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordbank/internal/database"
	"github.com/mrlokans/wordbank/internal/entities"
)

type brokenPinger struct{}

func (brokenPinger) Ping() error { return errors.New("connection refused") }

func setupHealthTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewQuietDatabase(filepath.Join(t.TempDir(), "health.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is connected", func(t *testing.T) {
		db := setupHealthTestDB(t)
		store := newTestStore(t, db)
		mustAddWord(t, store, "alpha")
		router := newTestRouter(t, RouterConfig{Store: store, Database: db, Version: "1.0.0"})

		w := doRequest(t, router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "1 words, 0 tags", response.Checks["vocabulary"])
		assert.Equal(t, entities.SlotKeyVocabulary, response.Checks["storage_slots"])
		require.NotNil(t, response.Vocabulary)
		assert.Equal(t, 1, response.Vocabulary.Words)
		assert.False(t, response.Vocabulary.QuizActive)
		assert.Contains(t, response.Time, "T")
	})

	t.Run("reports missing database", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{})

		w := doRequest(t, router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "not configured", response.Checks["database"])
		assert.NotContains(t, response.Checks, "storage_slots")
	})

	t.Run("reports an empty slot table", func(t *testing.T) {
		db := setupHealthTestDB(t)
		router := newTestRouter(t, RouterConfig{Database: db})

		w := doRequest(t, router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "empty", decode[HealthResponse](t, w).Checks["storage_slots"])
	})

	t.Run("returns unhealthy when ping fails", func(t *testing.T) {
		router := newTestRouter(t, RouterConfig{Database: brokenPinger{}})

		w := doRequest(t, router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "connection refused")
	})

	t.Run("returns unhealthy when database connection is closed", func(t *testing.T) {
		db := setupHealthTestDB(t)
		require.NoError(t, db.Close())
		router := newTestRouter(t, RouterConfig{Database: db})

		w := doRequest(t, router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, decode[HealthResponse](t, w).Checks["database"], "error")
	})
}

func TestPing(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	w := doRequest(t, router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
