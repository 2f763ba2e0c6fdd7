// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Request limits not enforced by the models.
const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores anything longer

	// PageSize is the number of posts per public page.
	PageSize = 10
	// maxPage keeps (page-1)*PageSize inside a 32-bit OFFSET.
	maxPage = math.MaxInt32 / PageSize

	defaultLimit = 50
	maxLimit     = 200
)

// validatePassword checks a new account password and returns the first
// problem found, or "".
func validatePassword(password string) string {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLen {
		return "Password is too short (min 8 characters)."
	}
	if len(password) > maxPasswordLen {
		return "Password is too long (max 72 bytes)."
	}
	return ""
}

// parsePage reads a 1-based page number. Missing, malformed or
// non-positive values select the first page. Values above maxPage,
// including ones too large for an int, are capped at maxPage.
func parsePage(q url.Values) int {
	raw := q.Get("page")
	page, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return maxPage
		}
		return 1
	}
	if page < 1 {
		return 1
	}
	return min(page, maxPage)
}

// totalPages returns the number of pages needed for count items, at least 1.
func totalPages(count, size int) int {
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// parseLimitOffset reads limit and offset query parameters for admin
// listings, applying defaults and clamping limit to maxLimit.
func parseLimitOffset(q url.Values) (limit, offset int, msg string) {
	limit = defaultLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, "limit must be a positive integer"
		}
		limit = min(n, maxLimit)
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, "offset must be a non-negative integer"
		}
		offset = n
	}
	return limit, offset, ""
}

// queryUUID reads an optional UUID query parameter.
func queryUUID(q url.Values, name string) (*uuid.UUID, string) {
	v := q.Get(name)
	if v == "" {
		return nil, ""
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, "invalid " + name
	}
	return &id, ""
}

// queryBool reads an optional boolean query parameter.
func queryBool(q url.Values, name string) (*bool, string) {
	v := q.Get(name)
	if v == "" {
		return nil, ""
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, "invalid " + name
	}
	return &b, ""
}
