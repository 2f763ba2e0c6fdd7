// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// mock_test.go exercises query shapes and error mapping with go-sqlmock.
// These tests run without PostgreSQL.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"blogicum/internal/models"
)

func newMock(t *testing.T) (*CategoryStore, *PostStore, *CommentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return NewCategoryStore(db), NewPostStore(db), NewCommentStore(db), mock
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"unique", "23505", ErrDuplicate},
		{"foreign key", "23503", ErrInvalidReference},
		{"check", "23514", ErrInvalidValue},
		{"not null", "23502", ErrInvalidValue},
		{"too long", "22001", ErrInvalidValue},
		{"bad text", "22P02", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code, ConstraintName: "some_constraint", Message: "boom"}
			err := mapError(pgErr)
			if !errors.Is(err, tt.want) {
				t.Errorf("mapError(%s) = %v, want %v", tt.code, err, tt.want)
			}
			var back *pgconn.PgError
			if !errors.As(err, &back) {
				t.Error("original *pgconn.PgError lost from the chain")
			}
		})
	}

	t.Run("unmapped code passes through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "40001"}
		if err := mapError(pgErr); err != pgErr {
			t.Errorf("got %v, want original error", err)
		}
	})

	t.Run("non-postgres error passes through", func(t *testing.T) {
		plain := fmt.Errorf("network down")
		if err := mapError(plain); err != plain {
			t.Errorf("got %v, want original error", err)
		}
	})
}

func TestCategoryCreateDuplicateSlugMock(t *testing.T) {
	cats, _, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories")).
		WithArgs("News", "Daily", "news", true).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "categories_slug_key"})

	_, err := cats.Create(context.Background(), &models.Category{
		Title: "News", Description: "Daily", Slug: "news", IsPublished: true,
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCategoryDeleteNotFoundMock(t *testing.T) {
	cats, _, _, mock := newMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := cats.Delete(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostFindByIDReadsCommentCount(t *testing.T) {
	_, posts, _, mock := newMock(t)
	id, author := uuid.New(), uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "title", "text", "pub_date", "author_id", "location_id",
		"category_id", "is_published", "created_at", "image", "comment_count",
	}).AddRow(id.String(), "Hello", "...", now, author.String(), nil, nil, true, now, nil, 3)

	mock.ExpectQuery(`SELECT .*\(SELECT COUNT\(\*\) FROM comments c WHERE c.current_post_id = p.id\) AS comment_count.* WHERE p.id = \$1`).
		WithArgs(id).
		WillReturnRows(rows)

	p, err := posts.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if p.CommentCount != 3 {
		t.Errorf("comment_count: got %d, want 3", p.CommentCount)
	}
	if p.LocationID != nil || p.CategoryID != nil {
		t.Error("expected nil location and category")
	}
}

func TestPostListFilterArgs(t *testing.T) {
	_, posts, _, mock := newMock(t)
	author, cat := uuid.New(), uuid.New()
	published := true

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE p.author_id = $1 AND p.category_id = $2 AND p.is_published = $3 ORDER BY p.pub_date DESC, p.created_at DESC LIMIT $4 OFFSET $5")).
		WithArgs(author, cat, true, 10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, err := posts.List(context.Background(), PostFilter{
		AuthorID: &author, CategoryID: &cat, IsPublished: &published,
	}, 10, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no posts, got %d", len(items))
	}
}

func TestPostListPublishedUsesVisibilityFilter(t *testing.T) {
	_, posts, _, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"LEFT JOIN categories cat ON cat.id = p.category_id WHERE p.is_published AND p.pub_date <= $1 AND (p.category_id IS NULL OR cat.is_published)")).
		WithArgs(now, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := posts.ListPublished(context.Background(), now, 10, 0); err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
}

func TestCommentCreateMissingPostMock(t *testing.T) {
	_, _, comments, mock := newMock(t)
	postID, authorID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs("Nice!", postID, authorID).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_current_post_id_fkey"})

	_, err := comments.Create(context.Background(), &models.Comment{
		Text: "Nice!", CurrentPostID: postID, AuthorID: authorID,
	})
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestCommentListByPostOrderMock(t *testing.T) {
	_, _, comments, mock := newMock(t)
	postID, authorID := uuid.New(), uuid.New()
	t0 := time.Now()

	rows := sqlmock.NewRows([]string{"id", "text", "current_post_id", "author_id", "created_at"}).
		AddRow(uuid.NewString(), "a", postID.String(), authorID.String(), t0).
		AddRow(uuid.NewString(), "b", postID.String(), authorID.String(), t0.Add(time.Second))

	mock.ExpectQuery(`FROM comments\s+WHERE current_post_id = \$1\s+ORDER BY created_at ASC`).
		WithArgs(postID).
		WillReturnRows(rows)

	list, err := comments.ListByPost(context.Background(), postID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(list) != 2 || list[0].Text != "a" || list[1].Text != "b" {
		t.Errorf("unexpected comments: %+v", list)
	}
}

func TestUserListRegistrationOrderMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	t0 := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "first_name", "last_name", "created_at"}).
			AddRow(uuid.NewString(), "zoe", "", "x", "", "", t0).
			AddRow(uuid.NewString(), "adam", "", "x", "", "", t0.Add(time.Second)))

	users, err := NewUserStore(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 || users[0].Username != "zoe" || users[1].Username != "adam" {
		t.Errorf("unexpected order: %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
