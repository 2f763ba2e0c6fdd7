// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"blogicum/internal/models"
)

type commentRequest struct {
	Text     string    `json:"text"`
	AuthorID uuid.UUID `json:"author_id"`
}

// CommentsList returns the comments of a post, oldest first.
func (a *API) CommentsList(w http.ResponseWriter, r *http.Request) {
	postID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	post, err := a.posts.FindByID(r.Context(), postID)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	comments, err := a.comments.ListByPost(r.Context(), postID)
	if err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}
	writeJSON(w, http.StatusOK, newCommentViews(comments))
}

// CommentCreate adds a comment to a post.
func (a *API) CommentCreate(w http.ResponseWriter, r *http.Request) {
	postID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := a.posts.FindByID(r.Context(), postID)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	c := &models.Comment{Text: req.Text, CurrentPostID: postID, AuthorID: req.AuthorID}
	if err := c.Validate(); err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}

	created, err := a.comments.Create(r.Context(), c)
	if err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}
	writeJSON(w, http.StatusCreated, newCommentView(created))
}

// CommentGet returns a single comment by id.
func (a *API) CommentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	c, err := a.comments.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "comment not found")
		return
	}
	writeJSON(w, http.StatusOK, newCommentView(c))
}

// CommentUpdate changes the text of a comment. Post and author are fixed.
func (a *API) CommentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := a.comments.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "comment not found")
		return
	}

	c.Text = req.Text
	if err := c.Validate(); err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}
	if err := a.comments.Update(r.Context(), c); err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}
	writeJSON(w, http.StatusOK, newCommentView(c))
}

// CommentDelete removes a comment.
func (a *API) CommentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if err := a.comments.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
