// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// God represents a deity within a world.
type God struct {
	ID          ulid.ULID
	WorldID     ulid.ULID
	Name        string
	Domain      *string
	Alignment   *string
	Symbol      *string
	Summary     *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GodSummary is the list-view projection of a God.
type GodSummary struct {
	ID        ulid.ULID
	Name      string
	Domain    *string
	Summary   *string
	CreatedAt time.Time
}

// GodUpdate carries the mutable fields for a god update.
type GodUpdate struct {
	ID          ulid.ULID
	WorldID     ulid.ULID
	Name        string
	Domain      *string
	Alignment   *string
	Symbol      *string
	Summary     *string
	Description *string
}
