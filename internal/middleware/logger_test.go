package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/brvmsim/internal/logger"
)

// The request logger observes; it must never alter status, body or headers.
func TestRequestLogger_PassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.POST("/orders", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/orders", `{"symbol":"BICC"}`, http.StatusCreated},
		{http.MethodGet, "/missing", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Fatalf("%s %s: status %d, want %d", tc.method, tc.path, w.Code, tc.want)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: request id not set", tc.method, tc.path)
		}
	}
}
