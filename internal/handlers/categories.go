// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"blogicum/internal/models"
	"blogicum/internal/slug"
)

type categoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsPublished *bool  `json:"is_published"`
}

// apply copies the request onto c. An empty slug keeps the category's
// current slug; a new category derives one from its title.
func (req *categoryRequest) apply(c *models.Category) {
	c.Title = strings.TrimSpace(req.Title)
	c.Description = strings.TrimSpace(req.Description)
	if s := strings.TrimSpace(req.Slug); s != "" {
		c.Slug = s
	} else if c.Slug == "" {
		c.Slug = slug.Generate(c.Title)
	}
	if req.IsPublished != nil {
		c.IsPublished = *req.IsPublished
	}
}

// CategoriesList returns every category, published or not.
func (a *API) CategoriesList(w http.ResponseWriter, r *http.Request) {
	cats, err := a.categories.List(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// CategoryCreate creates a category. New categories are published unless
// the request says otherwise.
func (a *API) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := &models.Category{IsPublished: true}
	req.apply(c)
	if err := c.Validate(); err != nil {
		writeStoreError(w, r, err, "category")
		return
	}

	created, err := a.categories.Create(r.Context(), c)
	if err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CategoryGet returns a single category by id.
func (a *API) CategoryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	c, err := a.categories.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CategoryUpdate replaces a category's editable fields.
func (a *API) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := a.categories.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	req.apply(c)
	if err := c.Validate(); err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	if err := a.categories.Update(r.Context(), c); err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CategoryDelete removes a category. Its posts remain with no category.
func (a *API) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if err := a.categories.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
