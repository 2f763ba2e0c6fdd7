// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"blogicum/internal/slug"
)

// Category groups posts under a unique URL-safe slug. Hiding a category
// hides every post assigned to it from the public feed.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks title, description and slug.
func (c *Category) Validate() error {
	if err := requireText("title", c.Title, MaxTitleLen); err != nil {
		return err
	}
	if err := requireBody("description", c.Description); err != nil {
		return err
	}
	if !slug.Valid(c.Slug) {
		return &ValidationError{
			Field:   "slug",
			Message: "must be 1-50 characters of latin letters, digits, hyphen or underscore",
		}
	}
	return nil
}
