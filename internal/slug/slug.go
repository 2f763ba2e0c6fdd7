// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug generates and validates URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
)

// MaxLen is the longest slug accepted by Valid and produced by Generate.
const MaxLen = 50

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s_-]`)
	// whitespace matches runs of spaces, tabs and newlines.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// valid is the accepted slug charset: latin letters, digits, hyphen, underscore.
	valid = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// Generate creates a URL-friendly slug from the given string, cut to MaxLen.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if len(result) > MaxLen {
		result = strings.TrimRight(result[:MaxLen], "-")
	}
	return result
}

// Valid reports whether s is a non-empty slug of at most MaxLen characters
// drawn from latin letters, digits, hyphen and underscore.
func Valid(s string) bool {
	return len(s) <= MaxLen && valid.MatchString(s)
}
