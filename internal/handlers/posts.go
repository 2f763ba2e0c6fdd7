// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogicum/internal/models"
	"blogicum/internal/store"
)

type postRequest struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PubDate     *time.Time `json:"pub_date"`
	AuthorID    uuid.UUID  `json:"author_id"`
	LocationID  *uuid.UUID `json:"location_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	IsPublished *bool      `json:"is_published"`
}

// apply copies the editable fields onto p. A missing pub_date or
// is_published keeps the current value.
func (req *postRequest) apply(p *models.Post) {
	p.Title = strings.TrimSpace(req.Title)
	p.Text = req.Text
	if req.PubDate != nil {
		p.PubDate = *req.PubDate
	}
	p.LocationID = req.LocationID
	p.CategoryID = req.CategoryID
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
}

// PostsList returns posts filtered by author_id, category_id,
// location_id and is_published, newest first, paged by limit/offset.
func (a *API) PostsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset, msg := parseLimitOffset(q)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var f store.PostFilter
	for name, dst := range map[string]**uuid.UUID{
		"author_id":   &f.AuthorID,
		"category_id": &f.CategoryID,
		"location_id": &f.LocationID,
	} {
		id, msg := queryUUID(q, name)
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		*dst = id
	}
	if f.IsPublished, msg = queryBool(q, "is_published"); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	posts, err := a.posts.List(r.Context(), f, limit, offset)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	writeJSON(w, http.StatusOK, newPostViews(posts, a.storageClient))
}

// PostCreate creates a post. pub_date defaults to now and is_published
// to true.
func (a *API) PostCreate(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := &models.Post{
		AuthorID:    req.AuthorID,
		PubDate:     a.now(),
		IsPublished: true,
	}
	req.apply(p)
	if err := p.Validate(); err != nil {
		writeStoreError(w, r, err, "post")
		return
	}

	created, err := a.posts.Create(r.Context(), p)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	writeJSON(w, http.StatusCreated, newPostView(created, a.storageClient))
}

// PostGet returns a single post by id regardless of visibility.
func (a *API) PostGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	p, err := a.posts.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, newPostView(p, a.storageClient))
}

// PostUpdate replaces a post's editable fields. The author cannot change.
func (a *API) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := a.posts.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if req.AuthorID != uuid.Nil && req.AuthorID != p.AuthorID {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "author_id cannot be changed", Field: "author_id"})
		return
	}

	req.apply(p)
	if err := p.Validate(); err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if err := a.posts.Update(r.Context(), p); err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	writeJSON(w, http.StatusOK, newPostView(p, a.storageClient))
}

// PostDelete removes a post with its comments and, best-effort, its
// stored image objects.
func (a *API) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := a.posts.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if deleted == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if deleted.HasImage() {
		a.deleteImageObjects(r.Context(), *deleted.Image)
	}
	w.WriteHeader(http.StatusNoContent)
}
