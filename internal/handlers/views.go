// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"time"

	"github.com/google/uuid"

	"blogicum/internal/imaging"
	"blogicum/internal/models"
	"blogicum/internal/storage"
)

// postView is the JSON shape of a post: the stored fields and comment
// count plus public image URLs when object storage is configured.
type postView struct {
	models.Post
	ImageURL string `json:"image_url,omitempty"`
	ThumbURL string `json:"thumb_url,omitempty"`
}

func newPostView(p *models.Post, sc *storage.Client) postView {
	v := postView{Post: *p}
	if p.HasImage() && sc != nil {
		v.ImageURL = sc.FileURL(*p.Image)
		v.ThumbURL = sc.FileURL(imaging.ThumbKey(*p.Image))
	}
	return v
}

func newPostViews(posts []models.Post, sc *storage.Client) []postView {
	views := make([]postView, 0, len(posts))
	for i := range posts {
		views = append(views, newPostView(&posts[i], sc))
	}
	return views
}

// commentView is the JSON shape of a comment. post_id mirrors
// current_post_id.
type commentView struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	PostID        uuid.UUID `json:"post_id"`
	CurrentPostID uuid.UUID `json:"current_post_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func newCommentView(c *models.Comment) commentView {
	return commentView{
		ID:            c.ID,
		Text:          c.Text,
		PostID:        c.PostID(),
		CurrentPostID: c.CurrentPostID,
		AuthorID:      c.AuthorID,
		CreatedAt:     c.CreatedAt,
	}
}

func newCommentViews(comments []models.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for i := range comments {
		views = append(views, newCommentView(&comments[i]))
	}
	return views
}
