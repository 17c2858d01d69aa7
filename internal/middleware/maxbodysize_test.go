package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trainline/backend/internal/middleware"
)

// readAllHandler answers 413 if reading the body fails, as it does once
// http.MaxBytesReader trips, and 200 otherwise.
var readAllHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 100

	tests := []struct {
		name          string
		size          int
		contentLength int64 // -1 means unknown (streaming)
		want          int
	}{
		{"within limit", 50, 50, http.StatusOK},
		{"exactly at limit", limit, limit, http.StatusOK},
		{"declared length over limit", 200, 200, http.StatusRequestEntityTooLarge},
		{"streamed body over limit", 200, -1, http.StatusRequestEntityTooLarge},
	}

	h := middleware.NewMaxBodySizeHandler(limit)(readAllHandler)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/lines", strings.NewReader(strings.Repeat("x", tc.size)))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

// TestMaxBodySizeHandler_RejectsBeforeHandler verifies that an oversized
// Content-Length never reaches the wrapped handler.
func TestMaxBodySizeHandler_RejectsBeforeHandler(t *testing.T) {
	called := false
	h := middleware.NewMaxBodySizeHandler(10)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/lines", strings.NewReader(strings.Repeat("x", 20)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called)
}
