package ratelim

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitExhaustsBurst(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var lastCode int
	for i := 0; i < 11; i++ {
		r := httptest.NewRequest(http.MethodPost, "/bookings/confirm", nil)
		r.RemoteAddr = "203.0.113.9:1234"
		w := httptest.NewRecorder()
		handler(w, r, nil)
		lastCode = w.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Fatalf("11th request status = %d, want 429", lastCode)
	}
}

func TestLimitSharesBucketAcrossPorts(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// one host reconnecting on fresh ports must not get fresh buckets
	var lastCode int
	for i := 0; i < 11; i++ {
		r := httptest.NewRequest(http.MethodPost, "/bookings/confirm", nil)
		r.RemoteAddr = "203.0.113.9:" + strconv.Itoa(40000+i)
		w := httptest.NewRecorder()
		handler(w, r, nil)
		lastCode = w.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Fatalf("11th request from rotating ports status = %d, want 429", lastCode)
	}
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 11; i++ {
		r := httptest.NewRequest(http.MethodPost, "/bookings/confirm", nil)
		r.RemoteAddr = "203.0.113.9:1234"
		handler(httptest.NewRecorder(), r, nil)
	}

	r := httptest.NewRequest(http.MethodPost, "/bookings/confirm", nil)
	r.RemoteAddr = "198.51.100.7:9876"
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("fresh IP status = %d, want 200", w.Code)
	}
}
