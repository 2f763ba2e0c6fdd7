// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry. PubDate may lie in the future to defer publication.
// Location and category are optional and cleared when their rows are deleted.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PubDate     time.Time  `json:"pub_date"`
	AuthorID    uuid.UUID  `json:"author_id"`
	LocationID  *uuid.UUID `json:"location_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	Image       *string    `json:"image"` // object key under post_images/

	// Computed on every read from the comments table.
	CommentCount int `json:"comment_count"`
}

// Validate checks title and text.
func (p *Post) Validate() error {
	if err := requireText("title", p.Title, MaxTitleLen); err != nil {
		return err
	}
	if err := requireBody("text", p.Text); err != nil {
		return err
	}
	if p.PubDate.IsZero() {
		return &ValidationError{Field: "pub_date", Message: "is required"}
	}
	if p.AuthorID == uuid.Nil {
		return &ValidationError{Field: "author_id", Message: "is required"}
	}
	return nil
}

// IsVisible reports whether the post may be shown publicly at now: it must
// be published, not scheduled for later, and its category (if any) must be
// published too. category must be the post's category or nil.
func (p *Post) IsVisible(now time.Time, category *Category) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.CategoryID != nil && (category == nil || !category.IsPublished) {
		return false
	}
	return true
}

// HasImage returns true if an image has been uploaded for the post.
func (p *Post) HasImage() bool {
	return p.Image != nil && *p.Image != ""
}
