// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Item represents an object within a world. OwnerNpcID and LocationID are
// weak references that must resolve within the same world when set.
type Item struct {
	ID          ulid.ULID
	WorldID     ulid.ULID
	Name        string
	Type        *string
	Rarity      *string
	Summary     *string
	Description *string
	OwnerNpcID  *ulid.ULID
	LocationID  *ulid.ULID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemSummary is the list-view projection of an Item.
type ItemSummary struct {
	ID        ulid.ULID
	Name      string
	Type      *string
	Rarity    *string
	Summary   *string
	CreatedAt time.Time
}

// ItemUpdate carries the mutable fields for an item update.
type ItemUpdate struct {
	ID          ulid.ULID
	WorldID     ulid.ULID
	Name        string
	Type        *string
	Rarity      *string
	Summary     *string
	Description *string
	OwnerNpc    RefField
	Location    RefField
}
