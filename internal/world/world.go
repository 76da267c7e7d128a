// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

// Package world contains the worldbuilding domain types and logic.
package world

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// World is the root aggregate. Every other entity belongs to exactly one World
// and is meaningless without it.
type World struct {
	ID          ulid.ULID
	OwnerID     ulid.ULID
	Name        string
	Slug        string
	Summary     *string
	Description *string
	IsPrivate   bool
	CreatedAt   time.Time
}

// WorldSummary is the list-view projection of a World.
type WorldSummary struct {
	ID        ulid.ULID
	Name      string
	Slug      string
	Summary   *string
	IsPrivate bool
	CreatedAt time.Time
}

// Slugify derives a URL slug from a world name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphens. Uniqueness is not enforced.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
