// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
)

// Limiter decides whether another request for key fits in the current window.
// cache.Limiter implements it on top of Valkey.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit returns middleware that limits requests per client IP. scope
// separates the counters of different endpoints. When the limiter fails
// (Valkey down) the request is let through and the failure logged.
func RateLimit(l Limiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			ok, err := l.Allow(r.Context(), scope+":"+ip)
			if err != nil {
				slog.Warn("rate limiter unavailable, allowing request", "error", err, "scope", scope, "ip", ip)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				slog.Warn("rate limit exceeded", "scope", scope, "ip", ip)
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of r.RemoteAddr. Behind a reverse proxy
// RealIP has already replaced it with the forwarded client address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
