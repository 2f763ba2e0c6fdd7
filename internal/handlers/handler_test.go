// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"blogicum/internal/database"
	"blogicum/internal/models"
	"blogicum/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "blogicum")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "blogicum")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB         *sql.DB
	Users      *store.UserStore
	Categories *store.CategoryStore
	Locations  *store.LocationStore
	Posts      *store.PostStore
	Comments   *store.CommentStore
	API        *API
	Public     *Public
}

// newTestEnv creates a complete test environment without object storage.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	env := &testEnv{
		DB:         db,
		Users:      store.NewUserStore(db),
		Categories: store.NewCategoryStore(db),
		Locations:  store.NewLocationStore(db),
		Posts:      store.NewPostStore(db),
		Comments:   store.NewCommentStore(db),
	}
	env.API = NewAPI(env.Users, env.Categories, env.Locations, env.Posts, env.Comments, nil)
	env.Public = NewPublic(env.Users, env.Categories, env.Posts, env.Comments, nil)
	return env
}

// createUser inserts a user with a unique username and removes it (with
// its posts and comments) after the test.
func (env *testEnv) createUser(t *testing.T) *models.User {
	t.Helper()
	u, err := env.Users.Create(context.Background(), &models.User{
		Username: "h-" + uuid.NewString()[:8],
	}, "password123")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { env.DB.Exec("DELETE FROM users WHERE id = $1", u.ID) })
	return u
}

// createCategory inserts a category with a unique slug.
func (env *testEnv) createCategory(t *testing.T, published bool) *models.Category {
	t.Helper()
	c, err := env.Categories.Create(context.Background(), &models.Category{
		Title:       "Category",
		Description: "Test category",
		Slug:        "h-" + uuid.NewString()[:8],
		IsPublished: published,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	t.Cleanup(func() { env.DB.Exec("DELETE FROM categories WHERE id = $1", c.ID) })
	return c
}

// createPost inserts a published post dated a minute ago.
func (env *testEnv) createPost(t *testing.T, author *models.User, mutate func(p *models.Post)) *models.Post {
	t.Helper()
	p := &models.Post{
		Title:       "Post",
		Text:        "Some *text*",
		PubDate:     time.Now().Add(-time.Minute),
		AuthorID:    author.ID,
		IsPublished: true,
	}
	if mutate != nil {
		mutate(p)
	}
	created, err := env.Posts.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return created
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// jsonRequest builds a request with v encoded as the JSON body.
func jsonRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if v != nil {
		if err := json.NewEncoder(&body).Encode(v); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// serve runs h and returns the recorder.
func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, r)
	return rr
}

// decodeBody decodes the recorder body into v.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}
