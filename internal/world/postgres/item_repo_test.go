// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realmwright/realmwright/internal/world"
)

func TestItemRepositoryUpdateIndependentRefs(t *testing.T) {
	npcID := ulid.Make()
	npcStr := npcID.String()

	mock := newMockPool(t)
	worldID, itemID := ulid.Make(), ulid.Make()

	// Owner re-pointed, location untouched: each reference carries its own
	// touch flag.
	mock.ExpectExec(`UPDATE items SET`).
		WithArgs(itemID.String(), worldID.String(), "Ashbrand",
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			true, &npcStr,
			false, (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewItemRepository(mock)
	err := repo.Update(context.Background(), &world.ItemUpdate{
		ID:       itemID,
		WorldID:  worldID,
		Name:     "Ashbrand",
		OwnerNpc: world.RefField{Present: true, ID: &npcID},
		Location: world.RefField{},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

func TestItemRepositoryUpdateNotFound(t *testing.T) {
	mock := newMockPool(t)
	worldID, itemID := ulid.Make(), ulid.Make()

	mock.ExpectExec(`UPDATE items SET`).
		WithArgs(itemID.String(), worldID.String(), "Ashbrand",
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			false, (*string)(nil),
			false, (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewItemRepository(mock)
	err := repo.Update(context.Background(), &world.ItemUpdate{
		ID:      itemID,
		WorldID: worldID,
		Name:    "Ashbrand",
	})

	assert.ErrorIs(t, err, world.ErrNotFound)
}

func TestWorldRepositoryList(t *testing.T) {
	mock := newMockPool(t)
	ownerID, worldID := ulid.Make(), ulid.Make()

	rows := pgxmock.NewRows([]string{"id", "name", "slug", "summary", "is_private", "created_at"}).
		AddRow(worldID.String(), "Midgard", "midgard", nil, false, time.Now().UTC())
	mock.ExpectQuery(`SELECT id, name, slug, summary, is_private, created_at`).
		WithArgs(ownerID.String()).
		WillReturnRows(rows)

	repo := NewWorldRepository(mock)
	got, err := repo.List(context.Background(), ownerID)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, worldID, got[0].ID)
	assert.Equal(t, "midgard", got[0].Slug)
}

func TestWorldRepositoryGetNotFound(t *testing.T) {
	mock := newMockPool(t)
	worldID := ulid.Make()

	mock.ExpectQuery(`SELECT id, owner_id, name, slug, summary, description, is_private, created_at`).
		WithArgs(worldID.String()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "owner_id", "name", "slug", "summary", "description", "is_private", "created_at",
		}))

	repo := NewWorldRepository(mock)
	_, err := repo.Get(context.Background(), worldID)

	assert.ErrorIs(t, err, world.ErrNotFound)
}
