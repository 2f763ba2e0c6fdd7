// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"blogicum/internal/database"
	"blogicum/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "blogicum")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "blogicum")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway user. Deleting it at cleanup removes every
// post and comment it authored.
func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()
	s := NewUserStore(db)
	u, err := s.Create(context.Background(), &models.User{
		Username: "test-" + uuid.NewString()[:8],
		Email:    "test@store-test.local",
	}, "testpass123")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = $1", u.ID) })
	return u
}

// testCategory creates a published category with a random slug.
func testCategory(t *testing.T, db *sql.DB) *models.Category {
	t.Helper()
	c, err := NewCategoryStore(db).Create(context.Background(), &models.Category{
		Title:       "Test Category",
		Description: "Created by store tests",
		Slug:        "test-cat-" + uuid.NewString()[:8],
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM categories WHERE id = $1", c.ID) })
	return c
}

// testLocation creates a published location.
func testLocation(t *testing.T, db *sql.DB) *models.Location {
	t.Helper()
	l, err := NewLocationStore(db).Create(context.Background(), &models.Location{
		Name:        "Test Location",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("create test location: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM locations WHERE id = $1", l.ID) })
	return l
}

// testPost creates a published post dated an hour ago.
func testPost(t *testing.T, db *sql.DB, author *models.User, mutate func(p *models.Post)) *models.Post {
	t.Helper()
	p := &models.Post{
		Title:       "Hello",
		Text:        "Post body",
		PubDate:     time.Now().Add(-time.Hour),
		AuthorID:    author.ID,
		IsPublished: true,
	}
	if mutate != nil {
		mutate(p)
	}
	created, err := NewPostStore(db).Create(context.Background(), p)
	if err != nil {
		t.Fatalf("create test post: %v", err)
	}
	return created
}
