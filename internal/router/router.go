// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for
// Blogicum. It organizes routes into the /api management group and the
// read-only /public group.
package router

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"

	"blogicum/internal/handlers"
	"blogicum/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. commentLimiter throttles comment creation
// per client IP; nil disables throttling. Forwarding headers are honoured
// only from trustedProxies.
func New(api *handlers.API, public *handlers.Public, commentLimiter middleware.Limiter, trustedProxies []netip.Prefix) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP(trustedProxies))
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONStatus(w, http.StatusNotFound, `{"error":"not found"}`)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONStatus(w, http.StatusMethodNotAllowed, `{"error":"method not allowed"}`)
	})

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", api.UsersList)
			r.Post("/", api.UserCreate)
			r.Get("/{id}", api.UserGet)
			r.Delete("/{id}", api.UserDelete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.CategoriesList)
			r.Post("/", api.CategoryCreate)
			r.Get("/{id}", api.CategoryGet)
			r.Put("/{id}", api.CategoryUpdate)
			r.Delete("/{id}", api.CategoryDelete)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", api.LocationsList)
			r.Post("/", api.LocationCreate)
			r.Get("/{id}", api.LocationGet)
			r.Put("/{id}", api.LocationUpdate)
			r.Delete("/{id}", api.LocationDelete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", api.PostsList)
			r.Post("/", api.PostCreate)
			r.Get("/{id}", api.PostGet)
			r.Put("/{id}", api.PostUpdate)
			r.Delete("/{id}", api.PostDelete)
			r.Put("/{id}/image", api.PostImageUpload)
			r.Delete("/{id}/image", api.PostImageDelete)

			r.Get("/{id}/comments", api.CommentsList)
			r.Group(func(r chi.Router) {
				if commentLimiter != nil {
					r.Use(middleware.RateLimit(commentLimiter, "comments"))
				}
				r.Post("/{id}/comments", api.CommentCreate)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/{id}", api.CommentGet)
			r.Put("/{id}", api.CommentUpdate)
			r.Delete("/{id}", api.CommentDelete)
		})
	})

	r.Route("/public", func(r chi.Router) {
		r.Get("/posts", public.Feed)
		r.Get("/posts/{id}", public.PostDetail)
		r.Get("/categories/{slug}", public.CategoryPosts)
		r.Get("/profile/{username}", public.Profile)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONStatus(w, http.StatusOK, `{"status":"ok"}`)
}

func writeJSONStatus(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
