// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"blogicum/internal/models"
)

// LocationStore manages locations in the database.
type LocationStore struct {
	db *sql.DB
}

// NewLocationStore returns a new LocationStore.
func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{db: db}
}

const locationColumns = `id, name, is_published, created_at`

func scanLocation(row scanner) (*models.Location, error) {
	var l models.Location
	if err := row.Scan(&l.ID, &l.Name, &l.IsPublished, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns all locations ordered by name.
func (s *LocationStore) List(ctx context.Context) ([]models.Location, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var items []models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

// FindByID retrieves a location by ID. Returns nil if not found.
func (s *LocationStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	l, err := scanLocation(s.db.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find location by id: %w", err)
	}
	return l, nil
}

// Create inserts a new location and returns it.
func (s *LocationStore) Create(ctx context.Context, l *models.Location) (*models.Location, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO locations (name, is_published)
		VALUES ($1, $2)
		RETURNING `+locationColumns,
		l.Name, l.IsPublished,
	)
	result, err := scanLocation(row)
	if err != nil {
		return nil, fmt.Errorf("create location: %w", mapError(err))
	}
	return result, nil
}

// Update modifies the name and visibility of a location.
func (s *LocationStore) Update(ctx context.Context, l *models.Location) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE locations SET name = $1, is_published = $2 WHERE id = $3
	`, l.Name, l.IsPublished, l.ID)
	if err != nil {
		return fmt.Errorf("update location: %w", mapError(err))
	}
	return requireAffected(res, "update location")
}

// Delete removes a location. Posts keep existing with location_id cleared.
func (s *LocationStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return requireAffected(res, "delete location")
}
