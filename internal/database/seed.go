// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed username and password for development.
const (
	SeedUsername = "admin"
	SeedPassword = "admin"
	SeedCategory = "welcome"
)

// Seed populates an empty database with development data: an admin user,
// a category, a location and a welcome post. It is a no-op when any user
// already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	var userID, categoryID, locationID string
	if err := tx.QueryRow(`
		INSERT INTO users (username, email, password_hash, first_name)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, SeedUsername, "admin@blogicum.local", string(hash), "Admin").Scan(&userID); err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if err := tx.QueryRow(`
		INSERT INTO categories (title, description, slug)
		VALUES ($1, $2, $3) RETURNING id
	`, "Welcome", "Introductory posts.", SeedCategory).Scan(&categoryID); err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}

	if err := tx.QueryRow(`
		INSERT INTO locations (name) VALUES ($1) RETURNING id
	`, "Planet Earth").Scan(&locationID); err != nil {
		return fmt.Errorf("seed insert location: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO posts (title, text, pub_date, author_id, location_id, category_id)
		VALUES ($1, $2, NOW(), $3, $4, $5)
	`, "Hello, Blogicum", "The first post. Edit or delete it.", userID, locationID, categoryID); err != nil {
		return fmt.Errorf("seed insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with development data",
		"username", SeedUsername,
		"password", SeedPassword,
	)
	return nil
}
