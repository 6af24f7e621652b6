package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	app := newTestApp(t)
	app.config.limiter.enabled = true
	app.config.limiter.rps = 1
	app.config.limiter.burst = 2
	h := app.routes()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/books", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/books", "").Code)

	rec := do(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	h := newTestApp(t).routes()

	for range 10 {
		assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/books", "").Code)
	}
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApp(t)
	h := app.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"the server encountered a problem and could not process your request",
		decode[errorResponse](t, rec).Error,
	)
}

func TestRecoverPanic_WrapsFullChain(t *testing.T) {
	app := newTestApp(t)
	h := app.recoverPanic(app.logRequests(app.rateLimit(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("store exploded")
	}))))

	rec := do(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error": "the server encountered a problem and could not process your request"}`,
		rec.Body.String(),
	)
}

func TestLogRequests_SetsRequestID(t *testing.T) {
	app := newTestApp(t)

	var seen string
	h := app.logRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestID(r)
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}
