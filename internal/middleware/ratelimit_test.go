// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// countingLimiter allows limit requests per key and records the keys seen.
type countingLimiter struct {
	mu     sync.Mutex
	limit  int
	counts map[string]int
	err    error
}

func newCountingLimiter(limit int) *countingLimiter {
	return &countingLimiter{limit: limit, counts: map[string]int{}}
}

func (l *countingLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[key]++
	return l.counts[key] <= l.limit, nil
}

func serveFrom(t *testing.T, h http.Handler, remote string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/1/comments", nil)
	req.RemoteAddr = remote
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}

func TestRateLimit(t *testing.T) {
	l := newCountingLimiter(2)
	handler := RateLimit(l, "comments")(okHandler())

	for i := 0; i < 2; i++ {
		if rr := serveFrom(t, handler, "192.168.1.1:12345"); rr.Code != http.StatusCreated {
			t.Fatalf("request %d: got status %d, want 201", i+1, rr.Code)
		}
	}

	rr := serveFrom(t, handler, "192.168.1.1:12345")
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("got status %d, want 429", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	if !strings.Contains(rr.Body.String(), "too many requests") {
		t.Errorf("body: got %q", rr.Body.String())
	}

	// A different client has its own counter.
	if rr := serveFrom(t, handler, "10.0.0.9:1"); rr.Code != http.StatusCreated {
		t.Errorf("other client: got status %d, want 201", rr.Code)
	}

	if _, ok := l.counts["comments:192.168.1.1"]; !ok {
		t.Errorf("expected key scoped by name and IP, got %v", l.counts)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	l := newCountingLimiter(0)
	l.err = errors.New("valkey down")
	handler := RateLimit(l, "comments")(okHandler())

	if rr := serveFrom(t, handler, "192.168.1.1:12345"); rr.Code != http.StatusCreated {
		t.Errorf("got status %d, want 201 when the limiter errors", rr.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"ipv4 with port", "192.168.1.1:1234", "192.168.1.1"},
		{"ipv6 with port", "[2001:db8::1]:443", "2001:db8::1"},
		{"no port", "192.168.1.1", "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if got := clientIP(req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRateLimitIgnoresForwardedHeaders sends a fresh X-Forwarded-For on
// every request from an untrusted peer; all requests share one counter.
func TestRateLimitIgnoresForwardedHeaders(t *testing.T) {
	l := newCountingLimiter(2)
	handler := RealIP(nil)(RateLimit(l, "comments")(okHandler()))

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/posts/1/comments", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i+1))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.1.0.%d", i+1))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		last = rr.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request: got status %d, want 429", last)
	}
	if len(l.counts) != 1 || l.counts["comments:203.0.113.7"] != 3 {
		t.Errorf("counters: got %v", l.counts)
	}
}
