// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogicum/internal/models"
)

// PostStore handles all post-related database operations. Every read
// computes comment_count from the comments table; the count is never stored.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const (
	postColumns = `p.id, p.title, p.text, p.pub_date, p.author_id, p.location_id,
		p.category_id, p.is_published, p.created_at, p.image`

	// postSelect reads posts with their live comment count.
	postSelect = `SELECT ` + postColumns + `,
		(SELECT COUNT(*) FROM comments c WHERE c.current_post_id = p.id) AS comment_count
		FROM posts p`

	// visibleJoin and visibleWhere restrict posts to the public feed:
	// published, not scheduled for later, and not in a hidden category.
	visibleJoin  = ` LEFT JOIN categories cat ON cat.id = p.category_id`
	visibleWhere = ` p.is_published AND p.pub_date <= $1 AND (p.category_id IS NULL OR cat.is_published)`

	feedOrder = ` ORDER BY p.pub_date DESC, p.created_at DESC`
)

func scanPost(row scanner) (*models.Post, error) {
	var p models.Post
	if err := row.Scan(
		&p.ID, &p.Title, &p.Text, &p.PubDate, &p.AuthorID, &p.LocationID,
		&p.CategoryID, &p.IsPublished, &p.CreatedAt, &p.Image, &p.CommentCount,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostStore) list(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// PostFilter narrows List. Zero-valued fields are ignored.
type PostFilter struct {
	AuthorID    *uuid.UUID
	CategoryID  *uuid.UUID
	LocationID  *uuid.UUID
	IsPublished *bool
}

// where builds the WHERE clause and arguments for the filter.
func (f PostFilter) where() (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.AuthorID != nil {
		add("p.author_id = $%d", *f.AuthorID)
	}
	if f.CategoryID != nil {
		add("p.category_id = $%d", *f.CategoryID)
	}
	if f.LocationID != nil {
		add("p.location_id = $%d", *f.LocationID)
	}
	if f.IsPublished != nil {
		add("p.is_published = $%d", *f.IsPublished)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns posts matching the filter regardless of visibility, newest
// publication date first.
func (s *PostStore) List(ctx context.Context, f PostFilter, limit, offset int) ([]models.Post, error) {
	where, args := f.where()
	args = append(args, limit, offset)
	query := postSelect + where + feedOrder +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return s.list(ctx, query, args...)
}

// FindByID retrieves a post by its UUID regardless of visibility. Returns
// nil if not found.
func (s *PostStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	p, err := scanPost(s.db.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindVisible retrieves a post only if it is publicly visible at now.
// Returns nil otherwise.
func (s *PostStore) FindVisible(ctx context.Context, id uuid.UUID, now time.Time) (*models.Post, error) {
	p, err := scanPost(s.db.QueryRowContext(ctx,
		postSelect+visibleJoin+` WHERE`+visibleWhere+` AND p.id = $2`, now, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find visible post: %w", err)
	}
	return p, nil
}

// ListPublished returns the public feed at now, newest first.
func (s *PostStore) ListPublished(ctx context.Context, now time.Time, limit, offset int) ([]models.Post, error) {
	return s.list(ctx,
		postSelect+visibleJoin+` WHERE`+visibleWhere+feedOrder+` LIMIT $2 OFFSET $3`,
		now, limit, offset)
}

// CountPublished returns the number of posts in the public feed at now.
func (s *PostStore) CountPublished(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts p`+visibleJoin+` WHERE`+visibleWhere, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return count, nil
}

// ListPublishedByCategory returns visible posts of one category. The
// caller checks that the category itself is published.
func (s *PostStore) ListPublishedByCategory(ctx context.Context, categoryID uuid.UUID, now time.Time, limit, offset int) ([]models.Post, error) {
	return s.list(ctx,
		postSelect+visibleJoin+` WHERE`+visibleWhere+` AND p.category_id = $2`+feedOrder+` LIMIT $3 OFFSET $4`,
		now, categoryID, limit, offset)
}

// ListByAuthor returns an author's posts. With includeHidden the author's
// unpublished and scheduled posts are included, as on their own profile.
func (s *PostStore) ListByAuthor(ctx context.Context, authorID uuid.UUID, includeHidden bool, now time.Time, limit, offset int) ([]models.Post, error) {
	if includeHidden {
		return s.List(ctx, PostFilter{AuthorID: &authorID}, limit, offset)
	}
	return s.list(ctx,
		postSelect+visibleJoin+` WHERE`+visibleWhere+` AND p.author_id = $2`+feedOrder+` LIMIT $3 OFFSET $4`,
		now, authorID, limit, offset)
}

// Create inserts a new post and returns it with the generated ID. A
// missing author, location or category returns ErrInvalidReference.
func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	result := &models.Post{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, text, pub_date, author_id, location_id,
		                   category_id, is_published, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, text, pub_date, author_id, location_id,
		          category_id, is_published, created_at, image
	`, p.Title, p.Text, p.PubDate, p.AuthorID, p.LocationID,
		p.CategoryID, p.IsPublished, p.Image,
	).Scan(
		&result.ID, &result.Title, &result.Text, &result.PubDate, &result.AuthorID,
		&result.LocationID, &result.CategoryID, &result.IsPublished, &result.CreatedAt,
		&result.Image,
	)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", mapError(err))
	}
	// A new post has no comments yet.
	result.CommentCount = 0
	return result, nil
}

// Update modifies the editable fields of a post. The author, image and
// created_at are left untouched.
func (s *PostStore) Update(ctx context.Context, p *models.Post) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE posts SET
			title = $1, text = $2, pub_date = $3, location_id = $4,
			category_id = $5, is_published = $6
		WHERE id = $7
	`, p.Title, p.Text, p.PubDate, p.LocationID, p.CategoryID, p.IsPublished, p.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", mapError(err))
	}
	return requireAffected(res, "update post")
}

// SetImage stores or clears (nil key) the image object key of a post.
func (s *PostStore) SetImage(ctx context.Context, id uuid.UUID, key *string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE posts SET image = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("set post image: %w", mapError(err))
	}
	return requireAffected(res, "set post image")
}

// Delete removes a post and, by cascade, its comments. It returns the
// deleted row so the caller can clean up the image, or nil if no post had
// that ID.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	deleted := &models.Post{}
	err := s.db.QueryRowContext(ctx, `
		DELETE FROM posts WHERE id = $1
		RETURNING id, title, text, pub_date, author_id, location_id,
		          category_id, is_published, created_at, image
	`, id).Scan(
		&deleted.ID, &deleted.Title, &deleted.Text, &deleted.PubDate, &deleted.AuthorID,
		&deleted.LocationID, &deleted.CategoryID, &deleted.IsPublished, &deleted.CreatedAt,
		&deleted.Image,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete post: %w", err)
	}
	return deleted, nil
}

// CommentCount returns the number of comments on a post, read live.
func (s *PostStore) CommentCount(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE current_post_id = $1`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count post comments: %w", err)
	}
	return count, nil
}
