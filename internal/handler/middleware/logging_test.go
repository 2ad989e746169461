//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogConfig() config.LogConfig {
	return config.LogConfig{
		Level:          "error",
		TimeZone:       "Asia/Tokyo",
		TimeFormat:     "2006-01-02 15:04:05.000",
		TimeZoneOffset: 32400,
	}
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggingMiddleware(testLogConfig()))

	var requestID string
	router.GET("/ping", func(c *gin.Context) {
		requestID, _ = c.MustGet("request_id").(string)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, requestID)
}

func TestExtractStoreContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("route param wins", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/stores/abc", nil)
		c.Request.Header.Set("X-Store-ID", "from-header")
		c.Params = gin.Params{{Key: "store_id", Value: "from-route"}}

		assert.Equal(t, "from-route", extractStoreContext(c))
	})

	t.Run("falls back to header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/quotes", nil)
		c.Request.Header.Set("X-Store-ID", "from-header")

		assert.Equal(t, "from-header", extractStoreContext(c))
	})

	t.Run("empty when absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/quotes", nil)

		assert.Empty(t, extractStoreContext(c))
	})
}
