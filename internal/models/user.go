// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// usernamePattern allows letters, digits and @/./+/-/_ characters.
var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// User is an account that authors posts and comments.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName returns the first and last name joined, or the username when
// both are empty.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Validate checks the user's fields before insert.
func (u *User) Validate() error {
	if err := requireText("username", u.Username, MaxUsernameLen); err != nil {
		return err
	}
	if !usernamePattern.MatchString(u.Username) {
		return &ValidationError{Field: "username", Message: "may contain only letters, digits and @/./+/-/_"}
	}
	if err := maxText("email", u.Email, MaxEmailLen); err != nil {
		return err
	}
	if u.Email != "" && !strings.Contains(u.Email, "@") {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	if err := maxText("first_name", u.FirstName, MaxNameLen); err != nil {
		return err
	}
	return maxText("last_name", u.LastName, MaxNameLen)
}
