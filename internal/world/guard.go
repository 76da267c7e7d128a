// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Guard messages, fixed per violated relation.
const (
	msgPrimaryLocationWorld = "Primary location must belong to the same world."
	msgLocationWorld        = "Location must belong to the same world."
	msgOwnerNpcWorld        = "Owner NPC must belong to the same world."
)

// referencer is the slice of a repository the guard needs: a scoped
// existence lookup by id and world id.
type referencer interface {
	ExistsInWorld(ctx context.Context, worldID, id ulid.ULID) (bool, error)
}

// Guard enforces that weak references resolve to a row in the same world.
// It runs before the write, never after; a failed check aborts the whole
// operation so no partial write can occur.
type Guard struct {
	locations referencer
	npcs      referencer
}

// NewGuard creates a Guard over the location and NPC sources.
func NewGuard(locations, npcs referencer) *Guard {
	return &Guard{locations: locations, npcs: npcs}
}

// assertInWorld runs the scoped existence lookup and collapses every failure mode,
// including a storage error during the check, into a RelationError with the
// fixed message for the relation.
func assertInWorld(ctx context.Context, src referencer, worldID, id ulid.ULID, msg string) error {
	ok, err := src.ExistsInWorld(ctx, worldID, id)
	if err != nil || !ok {
		return &RelationError{Message: msg}
	}
	return nil
}

// AssertPrimaryLocation checks an NPC's primary location reference.
func (g *Guard) AssertPrimaryLocation(ctx context.Context, worldID, locationID ulid.ULID) error {
	return assertInWorld(ctx, g.locations, worldID, locationID, msgPrimaryLocationWorld)
}

// AssertLocation checks an item's location reference.
func (g *Guard) AssertLocation(ctx context.Context, worldID, locationID ulid.ULID) error {
	return assertInWorld(ctx, g.locations, worldID, locationID, msgLocationWorld)
}

// AssertOwnerNpc checks an item's owning NPC reference.
func (g *Guard) AssertOwnerNpc(ctx context.Context, worldID, npcID ulid.ULID) error {
	return assertInWorld(ctx, g.npcs, worldID, npcID, msgOwnerNpcWorld)
}
