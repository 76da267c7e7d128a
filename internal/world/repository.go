// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// SearchRow is the raw projection an entity repository returns for a search
// lookup. Secondary is the kind-specific descriptive field (location type,
// NPC role, item type, god domain).
type SearchRow struct {
	ID        ulid.ULID
	Name      string
	Secondary *string
	Summary   *string
}

// WorldRepository manages world persistence. Worlds are scoped to their
// owner; there is no cross-owner listing.
type WorldRepository interface {
	// List returns the owner's worlds, most recently created first.
	List(ctx context.Context, ownerID ulid.ULID) ([]WorldSummary, error)

	// Get retrieves a world by id. Returns ErrNotFound if no row matches.
	Get(ctx context.Context, id ulid.ULID) (*World, error)

	// Create persists a new world.
	Create(ctx context.Context, w *World) error
}

// LocationRepository manages location persistence. Every operation is scoped
// by world id; the world id participates in each read and write predicate.
type LocationRepository interface {
	List(ctx context.Context, worldID ulid.ULID) ([]LocationSummary, error)
	Get(ctx context.Context, worldID, id ulid.ULID) (*Location, error)
	Create(ctx context.Context, loc *Location) error
	Update(ctx context.Context, upd *LocationUpdate) error
	Delete(ctx context.Context, worldID, id ulid.ULID) error

	// ExistsInWorld reports whether the id resolves to a row in the world.
	ExistsInWorld(ctx context.Context, worldID, id ulid.ULID) (bool, error)

	// CountByWorld returns the number of locations in the world.
	CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error)

	// SearchByWorld returns up to limit rows whose text fields contain the
	// query, case-insensitively.
	SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}

// NPCRepository manages NPC persistence.
type NPCRepository interface {
	List(ctx context.Context, worldID ulid.ULID) ([]NPCSummary, error)
	Get(ctx context.Context, worldID, id ulid.ULID) (*NPC, error)
	Create(ctx context.Context, npc *NPC) error
	Update(ctx context.Context, upd *NPCUpdate) error
	Delete(ctx context.Context, worldID, id ulid.ULID) error
	ExistsInWorld(ctx context.Context, worldID, id ulid.ULID) (bool, error)
	CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error)
	SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}

// ItemRepository manages item persistence.
type ItemRepository interface {
	List(ctx context.Context, worldID ulid.ULID) ([]ItemSummary, error)
	Get(ctx context.Context, worldID, id ulid.ULID) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, upd *ItemUpdate) error
	Delete(ctx context.Context, worldID, id ulid.ULID) error
	CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error)
	SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}

// GodRepository manages god persistence.
type GodRepository interface {
	List(ctx context.Context, worldID ulid.ULID) ([]GodSummary, error)
	Get(ctx context.Context, worldID, id ulid.ULID) (*God, error)
	Create(ctx context.Context, god *God) error
	Update(ctx context.Context, upd *GodUpdate) error
	Delete(ctx context.Context, worldID, id ulid.ULID) error
	CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error)
	SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}
