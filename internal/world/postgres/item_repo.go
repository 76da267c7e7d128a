// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/realmwright/realmwright/internal/world"
)

// ItemRepository implements world.ItemRepository using PostgreSQL.
type ItemRepository struct {
	db DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// List returns the world's items, most recently created first.
func (r *ItemRepository) List(ctx context.Context, worldID ulid.ULID) ([]world.ItemSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, type, rarity, summary, created_at
		FROM items WHERE world_id = $1 ORDER BY created_at DESC
	`, worldID.String())
	if err != nil {
		return nil, oops.With("operation", "list items").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	items := make([]world.ItemSummary, 0)
	for rows.Next() {
		var (
			item  world.ItemSummary
			idStr string
		)
		if err := rows.Scan(&idStr, &item.Name, &item.Type, &item.Rarity, &item.Summary, &item.CreatedAt); err != nil {
			return nil, oops.With("operation", "scan item").Wrap(err)
		}
		if item.ID, err = parseULID(idStr, "id"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate items").Wrap(err)
	}
	return items, nil
}

// Get retrieves an item scoped to its world.
func (r *ItemRepository) Get(ctx context.Context, worldID, id ulid.ULID) (*world.Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, world_id, name, type, rarity, summary, description, owner_npc_id, location_id, created_at, updated_at
		FROM items WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ITEM_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get item").With("id", id.String()).Wrap(err)
	}
	return item, nil
}

// Create persists a new item.
// Callers must validate and guard the item before calling this method.
func (r *ItemRepository) Create(ctx context.Context, item *world.Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO items (id, world_id, name, type, rarity, summary, description, owner_npc_id, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, item.ID.String(), item.WorldID.String(), item.Name, item.Type, item.Rarity, item.Summary,
		item.Description, ulidToStringPtr(item.OwnerNpcID), ulidToStringPtr(item.LocationID),
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return oops.With("operation", "create item").With("id", item.ID.String()).Wrap(err)
	}
	return nil
}

// Update modifies an existing item. The owner and location references are
// only touched when the update carries them.
func (r *ItemRepository) Update(ctx context.Context, upd *world.ItemUpdate) error {
	touchOwner, ownerValue := refArgs(upd.OwnerNpc)
	touchLocation, locationValue := refArgs(upd.Location)
	result, err := r.db.Exec(ctx, `
		UPDATE items SET name = $3, type = $4, rarity = $5, summary = $6, description = $7,
			owner_npc_id = CASE WHEN $8 THEN $9 ELSE owner_npc_id END,
			location_id = CASE WHEN $10 THEN $11 ELSE location_id END,
			updated_at = NOW()
		WHERE id = $1 AND world_id = $2
	`, upd.ID.String(), upd.WorldID.String(), upd.Name, upd.Type, upd.Rarity, upd.Summary,
		upd.Description, touchOwner, ownerValue, touchLocation, locationValue)
	if err != nil {
		return oops.With("operation", "update item").With("id", upd.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("ITEM_NOT_FOUND").With("id", upd.ID.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// Delete removes an item scoped to its world.
func (r *ItemRepository) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	result, err := r.db.Exec(ctx, `
		DELETE FROM items WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())
	if err != nil {
		return oops.With("operation", "delete item").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("ITEM_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// CountByWorld returns the number of items in the world.
func (r *ItemRepository) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM items WHERE world_id = $1
	`, worldID.String()).Scan(&count)
	if err != nil {
		return 0, oops.With("operation", "count items").With("world_id", worldID.String()).Wrap(err)
	}
	return count, nil
}

// SearchByWorld returns up to limit items whose name, type, summary, or
// description contains the query, case-insensitively.
func (r *ItemRepository) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, type, summary
		FROM items
		WHERE world_id = $1 AND (name ILIKE $2 OR type ILIKE $2 OR summary ILIKE $2 OR description ILIKE $2)
		ORDER BY name ASC
		LIMIT $3
	`, worldID.String(), containsPattern(query), limit)
	if err != nil {
		return nil, oops.With("operation", "search items").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	return scanSearchRows(rows, "items")
}

// scanItem scans a single item from a row.
// Callers are responsible for handling pgx.ErrNoRows.
func scanItem(row pgx.Row) (*world.Item, error) {
	var (
		item        world.Item
		idStr       string
		worldIDStr  string
		ownerStr    *string
		locationStr *string
	)
	err := row.Scan(&idStr, &worldIDStr, &item.Name, &item.Type, &item.Rarity, &item.Summary,
		&item.Description, &ownerStr, &locationStr, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return nil, oops.With("operation", "scan item").Wrap(err)
	}

	if item.ID, err = parseULID(idStr, "id"); err != nil {
		return nil, err
	}
	if item.WorldID, err = parseULID(worldIDStr, "world_id"); err != nil {
		return nil, err
	}
	if item.OwnerNpcID, err = parseOptionalULID(ownerStr, "owner_npc_id"); err != nil {
		return nil, err
	}
	if item.LocationID, err = parseOptionalULID(locationStr, "location_id"); err != nil {
		return nil, err
	}
	return &item, nil
}

// Compile-time interface check.
var _ world.ItemRepository = (*ItemRepository)(nil)
