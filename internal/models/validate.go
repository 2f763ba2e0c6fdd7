// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field length limits shared by validation and the schema.
const (
	MaxTitleLen    = 255
	MaxNameLen     = 255
	MaxUsernameLen = 150
	MaxEmailLen    = 254
)

// ValidationError reports the first invalid field of an entity.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requireText checks that value is non-blank and at most max runes long.
func requireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return maxText(field, value, max)
}

// requireBody checks that a long text body is non-blank. Bodies have no
// length limit.
func requireBody(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

func maxText(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{Field: field, Message: fmt.Sprintf("is too long (max %d characters)", max)}
	}
	return nil
}
