// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"blogicum/internal/models"
)

type userRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UsersList returns every user in registration order.
func (a *API) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "user")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// UserCreate registers a new user with a hashed password.
func (a *API) UserCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u := &models.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.TrimSpace(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if err := u.Validate(); err != nil {
		writeStoreError(w, r, err, "user")
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: msg, Field: "password"})
		return
	}

	created, err := a.users.Create(r.Context(), u, req.Password)
	if err != nil {
		writeStoreError(w, r, err, "user")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UserGet returns a single user by id.
func (a *API) UserGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	u, err := a.users.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "user")
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UserDelete removes a user together with their posts and comments.
// Images of the removed posts stay in object storage.
func (a *API) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if err := a.users.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
