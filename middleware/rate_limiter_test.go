package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func limitedRouter(t *testing.T, perMin int, trusted []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(trusted))
	r.Use(RequestLogger(zap.NewNop()))
	r.Use(RateLimitMiddleware(NewRateLimiterStore(perMin)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r *gin.Engine, remote, forwarded string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitPerIP(t *testing.T) {
	r := limitedRouter(t, 2, nil)

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:5000", ""))
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:5001", ""))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:5002", ""))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:5000", ""))
}

func TestRateLimitIgnoresForwardedHeaderFromUntrustedPeer(t *testing.T) {
	r := limitedRouter(t, 1, nil)

	assert.Equal(t, http.StatusOK, get(r, "203.0.113.9:4000", "1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "203.0.113.9:4000", "2.2.2.2"))
}

func TestRateLimitHonoursForwardedHeaderFromTrustedProxy(t *testing.T) {
	r := limitedRouter(t, 1, []string{"10.0.0.0/8"})

	assert.Equal(t, http.StatusOK, get(r, "10.1.1.1:4000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, get(r, "10.1.1.1:4000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.1.1.1:4000", "198.51.100.1"))
}

func TestPruneDropsIdleLimiters(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewRateLimiterStore(10)
	s.now = func() time.Time { return now }

	s.getLimiter("1.1.1.1")
	now = now.Add(10 * time.Minute)
	s.getLimiter("2.2.2.2")
	require.Equal(t, 2, s.Len())

	assert.Equal(t, 1, s.Prune(5*time.Minute))
	assert.Equal(t, 1, s.Len())

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 1, s.Prune(5*time.Minute))
	assert.Equal(t, 0, s.Len())
}

func TestRequestLoggerSetsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	var found bool
	r.GET("/", func(c *gin.Context) {
		_, found = c.Get("logger")
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, found)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
