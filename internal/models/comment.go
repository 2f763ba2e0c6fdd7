// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one post and one author. Comments are read
// oldest first.
type Comment struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	CurrentPostID uuid.UUID `json:"current_post_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// PostID returns the id of the post the comment belongs to.
func (c *Comment) PostID() uuid.UUID {
	return c.CurrentPostID
}

// Validate checks the comment text and both references.
func (c *Comment) Validate() error {
	if err := requireBody("text", c.Text); err != nil {
		return err
	}
	if c.CurrentPostID == uuid.Nil {
		return &ValidationError{Field: "current_post_id", Message: "is required"}
	}
	if c.AuthorID == uuid.Nil {
		return &ValidationError{Field: "author_id", Message: "is required"}
	}
	return nil
}
