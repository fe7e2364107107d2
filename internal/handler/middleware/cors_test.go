//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("test configuration yields a working middleware", func(t *testing.T) {
		var mw gin.HandlerFunc
		require.NotPanics(t, func() {
			mw = middleware.NewCORSMiddleware(config.NewTestConfig().CORS)
		})
		require.NotNil(t, mw)
	})

	t.Run("allowed origin is echoed on preflight", func(t *testing.T) {
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
		engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := stdhttptest.NewRequest(http.MethodOptions, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := stdhttptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
