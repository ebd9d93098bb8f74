package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimited(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(rps, burst))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func getAs(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	r := setupLimited(0.001, 1)

	assert.Equal(t, http.StatusOK, getAs(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, getAs(r, "10.0.0.1"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, getAs(r, "10.0.0.2"))
}

func TestRateLimitEvictsWhenFull(t *testing.T) {
	r := setupLimited(0.001, 1)

	require.Equal(t, http.StatusOK, getAs(r, "10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, getAs(r, "10.0.0.1"))

	// flood with distinct clients until the map is dropped
	for i := 0; i < maxClients; i++ {
		getAs(r, fmt.Sprintf("172.16.%d.%d", i/256, i%256))
	}

	// the exhausted client got a fresh bucket after eviction
	assert.Equal(t, http.StatusOK, getAs(r, "10.0.0.1"))
}
