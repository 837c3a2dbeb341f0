package demo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(m *Middleware) *gin.Engine {
	router := gin.New()
	router.Use(m.Handler())
	ok := func(c *gin.Context) {
		demoMode, _ := c.Get(ContextKeyDemoMode)
		c.JSON(http.StatusOK, gin.H{"demo_mode": demoMode})
	}
	router.GET("/api/words", ok)
	router.POST("/api/words", ok)
	router.PUT("/api/words/:id", ok)
	router.DELETE("/api/words/:id", ok)
	router.POST("/api/quiz", ok)
	router.POST("/api/quiz/results", ok)
	router.OPTIONS("/api/words", ok)
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewMiddleware(t *testing.T) {
	assert.True(t, NewMiddleware(true).IsEnabled())
	assert.False(t, NewMiddleware(false).IsEnabled())
}

func TestMiddleware_Enabled(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"allows reads", http.MethodGet, "/api/words", http.StatusOK},
		{"allows preflight", http.MethodOptions, "/api/words", http.StatusOK},
		{"allows quiz generation", http.MethodPost, "/api/quiz", http.StatusOK},
		{"blocks create", http.MethodPost, "/api/words", http.StatusForbidden},
		{"blocks update", http.MethodPut, "/api/words/w1", http.StatusForbidden},
		{"blocks delete", http.MethodDelete, "/api/words/w1", http.StatusForbidden},
		{"blocks quiz results", http.MethodPost, "/api/quiz/results", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.method, tt.path)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestMiddleware_BlockedResponse(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	w := serve(router, http.MethodPost, "/api/words")
	require.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, Message, body["error"])
	assert.Equal(t, true, body["demo_mode"])
}

func TestMiddleware_Disabled(t *testing.T) {
	router := newTestRouter(NewMiddleware(false))

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		path := "/api/words"
		if method == http.MethodDelete {
			path = "/api/words/w1"
		}
		w := serve(router, method, path)
		assert.Equal(t, http.StatusOK, w.Code, method)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["demo_mode"])
	}
}
