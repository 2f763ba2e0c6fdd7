// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"blogicum/internal/models"
)

type locationRequest struct {
	Name        string `json:"name"`
	IsPublished *bool  `json:"is_published"`
}

func (req *locationRequest) apply(l *models.Location) {
	l.Name = strings.TrimSpace(req.Name)
	if req.IsPublished != nil {
		l.IsPublished = *req.IsPublished
	}
}

// LocationsList returns every location.
func (a *API) LocationsList(w http.ResponseWriter, r *http.Request) {
	locs, err := a.locations.List(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "location")
		return
	}
	if locs == nil {
		locs = []models.Location{}
	}
	writeJSON(w, http.StatusOK, locs)
}

// LocationCreate creates a location, published by default.
func (a *API) LocationCreate(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	l := &models.Location{IsPublished: true}
	req.apply(l)
	if err := l.Validate(); err != nil {
		writeStoreError(w, r, err, "location")
		return
	}

	created, err := a.locations.Create(r.Context(), l)
	if err != nil {
		writeStoreError(w, r, err, "location")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// LocationGet returns a single location by id.
func (a *API) LocationGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	l, err := a.locations.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "location")
		return
	}
	if l == nil {
		writeError(w, http.StatusNotFound, "location not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// LocationUpdate replaces a location's editable fields.
func (a *API) LocationUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req locationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := a.locations.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "location")
		return
	}
	if l == nil {
		writeError(w, http.StatusNotFound, "location not found")
		return
	}

	req.apply(l)
	if err := l.Validate(); err != nil {
		writeStoreError(w, r, err, "location")
		return
	}
	if err := a.locations.Update(r.Context(), l); err != nil {
		writeStoreError(w, r, err, "location")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// LocationDelete removes a location. Its posts remain with no location.
func (a *API) LocationDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if err := a.locations.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "location")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
