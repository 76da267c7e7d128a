// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Location represents a place within a world.
type Location struct {
	ID          ulid.ULID
	WorldID     ulid.ULID
	Name        string
	Type        *string
	Summary     *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LocationSummary is the list-view projection of a Location.
type LocationSummary struct {
	ID        ulid.ULID
	Name      string
	Type      *string
	Summary   *string
	CreatedAt time.Time
}

// LocationUpdate carries the mutable fields for a location update. The world
// id is part of the update predicate, not just the entity id.
type LocationUpdate struct {
	ID          ulid.ULID
	WorldID     ulid.ULID
	Name        string
	Type        *string
	Summary     *string
	Description *string
}
