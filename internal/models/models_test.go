package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// fieldOf returns the field named by a validation error, or "" for nil.
func fieldOf(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return ve.Field
}

func TestCategoryValidate(t *testing.T) {
	tests := []struct {
		name string
		cat  Category
		want string
	}{
		{"valid", Category{Title: "News", Description: "Daily news", Slug: "news"}, ""},
		{"underscore and digits", Category{Title: "T", Description: "D", Slug: "travel_2026"}, ""},
		{"uppercase slug allowed", Category{Title: "T", Description: "D", Slug: "Travel-Notes"}, ""},
		{"empty title", Category{Description: "D", Slug: "s"}, "title"},
		{"empty description", Category{Title: "T", Slug: "s"}, "description"},
		{"long description", Category{Title: "T", Description: strings.Repeat("d", 200_000), Slug: "s"}, ""},
		{"empty slug", Category{Title: "T", Description: "D"}, "slug"},
		{"slug with space", Category{Title: "T", Description: "D", Slug: "bad slug"}, "slug"},
		{"slug with slash", Category{Title: "T", Description: "D", Slug: "a/b"}, "slug"},
		{"cyrillic slug", Category{Title: "T", Description: "D", Slug: "новости"}, "slug"},
		{"slug too long", Category{Title: "T", Description: "D", Slug: strings.Repeat("a", 51)}, "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldOf(t, tt.cat.Validate()); got != tt.want {
				t.Errorf("Validate() field = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocationValidate(t *testing.T) {
	if err := (&Location{Name: "Moscow"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got := fieldOf(t, (&Location{}).Validate()); got != "name" {
		t.Errorf("empty name: field = %q, want %q", got, "name")
	}
	long := &Location{Name: strings.Repeat("x", MaxNameLen+1)}
	if got := fieldOf(t, long.Validate()); got != "name" {
		t.Errorf("long name: field = %q, want %q", got, "name")
	}
}

func TestCommentValidate(t *testing.T) {
	postID, authorID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		comment Comment
		want    string
	}{
		{"valid", Comment{Text: "Nice!", CurrentPostID: postID, AuthorID: authorID}, ""},
		{"empty text", Comment{CurrentPostID: postID, AuthorID: authorID}, "text"},
		{"missing post", Comment{Text: "x", AuthorID: authorID}, "current_post_id"},
		{"missing author", Comment{Text: "x", CurrentPostID: postID}, "author_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldOf(t, tt.comment.Validate()); got != tt.want {
				t.Errorf("Validate() field = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommentPostID(t *testing.T) {
	postID := uuid.New()
	c := &Comment{CurrentPostID: postID}
	if c.PostID() != postID {
		t.Errorf("PostID() = %s, want %s", c.PostID(), postID)
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"valid", User{Username: "leo.tolstoy", Email: "leo@example.com"}, ""},
		{"no email", User{Username: "anon"}, ""},
		{"empty username", User{Email: "a@b.c"}, "username"},
		{"username with space", User{Username: "leo tolstoy"}, "username"},
		{"username too long", User{Username: strings.Repeat("u", MaxUsernameLen+1)}, "username"},
		{"bad email", User{Username: "leo", Email: "not-an-email"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldOf(t, tt.user.Validate()); got != tt.want {
				t.Errorf("Validate() field = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		user User
		want string
	}{
		{User{Username: "leo", FirstName: "Leo", LastName: "Tolstoy"}, "Leo Tolstoy"},
		{User{Username: "leo", FirstName: "Leo"}, "Leo"},
		{User{Username: "leo"}, "leo"},
	}
	for _, tt := range tests {
		if got := tt.user.FullName(); got != tt.want {
			t.Errorf("FullName() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "slug", Message: "is required"}
	if err.Error() != "slug: is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}
