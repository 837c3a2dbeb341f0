// Package demo implements the read-only demo mode.
package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Message is returned for every blocked request.
const Message = "This action is disabled in demo mode"

// ContextKeyDemoMode stores the demo flag in the gin context.
const ContextKeyDemoMode = "demo_mode"

// Middleware blocks state-changing requests in demo mode. Reads are always
// allowed, as are the few non-GET endpoints that only touch session state.
type Middleware struct {
	enabled bool
	allowed []allowedRoute
}

type allowedRoute struct {
	method string
	path   string
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{
		enabled: enabled,
		allowed: []allowedRoute{
			// Generating a quiz is not saved.
			{method: http.MethodPost, path: "/api/quiz"},
		},
	}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a gin middleware that blocks writes.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDemoMode, m.enabled)

		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if m.isAllowed(c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     Message,
			"demo_mode": true,
		})
	}
}

func (m *Middleware) isAllowed(method, path string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, route := range m.allowed {
		if route.method == method && route.path == path {
			return true
		}
	}
	return false
}
