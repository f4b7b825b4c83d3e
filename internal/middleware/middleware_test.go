package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(RequestID(), StructuredLogger(logger), Metrics(), ErrorHandler(logger))
	r.GET("/thing", handler)
	return r
}

func TestRequestID_EchoesOrGenerates(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		id, _ := c.Get(RequestIDKey)
		c.String(http.StatusOK, id.(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/thing", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thing", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestErrorHandler_HidesDetails(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		_ = c.Error(errors.New("db password rejected"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thing", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"error": "already there"})
		_ = c.Error(errors.New("logged only"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thing", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotContains(t, w.Body.String(), "Internal server error")
}
