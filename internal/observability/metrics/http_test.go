package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetricsRegistersOnce(t *testing.T) {
	first, err := NewHTTPMetrics()
	require.NoError(t, err)
	require.NotNil(t, first)

	// Re-registering must reuse the existing collectors without error.
	second, err := NewHTTPMetrics()
	require.NoError(t, err)
	require.NotNil(t, second)
}

func TestGinMiddlewareCompletesRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m, err := NewHTTPMetrics()
	require.NoError(t, err)

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
}
