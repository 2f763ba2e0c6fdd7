// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for Blogicum. API serves the
// JSON management endpoints under /api; Public serves the read-only feed
// under /public. Both receive their dependencies through the handler struct.
package handlers

import (
	"time"

	"blogicum/internal/storage"
	"blogicum/internal/store"
)

// API groups the JSON management handlers and their dependencies.
type API struct {
	users         *store.UserStore
	categories    *store.CategoryStore
	locations     *store.LocationStore
	posts         *store.PostStore
	comments      *store.CommentStore
	storageClient *storage.Client
	now           func() time.Time
}

// NewAPI creates the management handler group. storageClient may be nil
// if S3 is not configured; image endpoints then answer 503.
func NewAPI(users *store.UserStore, categories *store.CategoryStore, locations *store.LocationStore, posts *store.PostStore, comments *store.CommentStore, storageClient *storage.Client) *API {
	return &API{
		users:         users,
		categories:    categories,
		locations:     locations,
		posts:         posts,
		comments:      comments,
		storageClient: storageClient,
		now:           time.Now,
	}
}
