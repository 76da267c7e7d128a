// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NPC represents a non-player character within a world. PrimaryLocationID is
// a weak reference: when set it must resolve to a Location in the same world,
// but it confers no ownership and no cascade behavior.
type NPC struct {
	ID                ulid.ULID
	WorldID           ulid.ULID
	Name              string
	Role              *string
	Alignment         *string
	Summary           *string
	Description       *string
	PrimaryLocationID *ulid.ULID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NPCSummary is the list-view projection of an NPC.
type NPCSummary struct {
	ID                ulid.ULID
	Name              string
	Role              *string
	Summary           *string
	PrimaryLocationID *ulid.ULID
	CreatedAt         time.Time
}

// NPCUpdate carries the mutable fields for an NPC update.
type NPCUpdate struct {
	ID              ulid.ULID
	WorldID         ulid.ULID
	Name            string
	Role            *string
	Alignment       *string
	Summary         *string
	Description     *string
	PrimaryLocation RefField
}
