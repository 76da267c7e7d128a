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

// NPCRepository implements world.NPCRepository using PostgreSQL.
type NPCRepository struct {
	db DB
}

// NewNPCRepository creates a new NPCRepository.
func NewNPCRepository(db DB) *NPCRepository {
	return &NPCRepository{db: db}
}

// List returns the world's NPCs, most recently created first.
func (r *NPCRepository) List(ctx context.Context, worldID ulid.ULID) ([]world.NPCSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, role, summary, primary_location_id, created_at
		FROM npcs WHERE world_id = $1 ORDER BY created_at DESC
	`, worldID.String())
	if err != nil {
		return nil, oops.With("operation", "list npcs").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	npcs := make([]world.NPCSummary, 0)
	for rows.Next() {
		var (
			npc       world.NPCSummary
			idStr     string
			primWorld *string
		)
		if err := rows.Scan(&idStr, &npc.Name, &npc.Role, &npc.Summary, &primWorld, &npc.CreatedAt); err != nil {
			return nil, oops.With("operation", "scan npc").Wrap(err)
		}
		if npc.ID, err = parseULID(idStr, "id"); err != nil {
			return nil, err
		}
		if npc.PrimaryLocationID, err = parseOptionalULID(primWorld, "primary_location_id"); err != nil {
			return nil, err
		}
		npcs = append(npcs, npc)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate npcs").Wrap(err)
	}
	return npcs, nil
}

// Get retrieves an NPC scoped to its world.
func (r *NPCRepository) Get(ctx context.Context, worldID, id ulid.ULID) (*world.NPC, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, world_id, name, role, alignment, summary, description, primary_location_id, created_at, updated_at
		FROM npcs WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())

	npc, err := scanNPC(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("NPC_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get npc").With("id", id.String()).Wrap(err)
	}
	return npc, nil
}

// Create persists a new NPC.
// Callers must validate and guard the NPC before calling this method.
func (r *NPCRepository) Create(ctx context.Context, npc *world.NPC) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO npcs (id, world_id, name, role, alignment, summary, description, primary_location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, npc.ID.String(), npc.WorldID.String(), npc.Name, npc.Role, npc.Alignment, npc.Summary,
		npc.Description, ulidToStringPtr(npc.PrimaryLocationID), npc.CreatedAt, npc.UpdatedAt)
	if err != nil {
		return oops.With("operation", "create npc").With("id", npc.ID.String()).Wrap(err)
	}
	return nil
}

// Update modifies an existing NPC. The primary location reference is only
// touched when the update carries it.
func (r *NPCRepository) Update(ctx context.Context, upd *world.NPCUpdate) error {
	touchRef, refValue := refArgs(upd.PrimaryLocation)
	result, err := r.db.Exec(ctx, `
		UPDATE npcs SET name = $3, role = $4, alignment = $5, summary = $6, description = $7,
			primary_location_id = CASE WHEN $8 THEN $9 ELSE primary_location_id END,
			updated_at = NOW()
		WHERE id = $1 AND world_id = $2
	`, upd.ID.String(), upd.WorldID.String(), upd.Name, upd.Role, upd.Alignment, upd.Summary,
		upd.Description, touchRef, refValue)
	if err != nil {
		return oops.With("operation", "update npc").With("id", upd.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("NPC_NOT_FOUND").With("id", upd.ID.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// Delete removes an NPC scoped to its world.
func (r *NPCRepository) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	result, err := r.db.Exec(ctx, `
		DELETE FROM npcs WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())
	if err != nil {
		return oops.With("operation", "delete npc").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("NPC_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// ExistsInWorld reports whether the id resolves to an NPC in the world.
func (r *NPCRepository) ExistsInWorld(ctx context.Context, worldID, id ulid.ULID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM npcs WHERE id = $1 AND world_id = $2)
	`, id.String(), worldID.String()).Scan(&exists)
	if err != nil {
		return false, oops.With("operation", "npc exists in world").With("id", id.String()).Wrap(err)
	}
	return exists, nil
}

// CountByWorld returns the number of NPCs in the world.
func (r *NPCRepository) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM npcs WHERE world_id = $1
	`, worldID.String()).Scan(&count)
	if err != nil {
		return 0, oops.With("operation", "count npcs").With("world_id", worldID.String()).Wrap(err)
	}
	return count, nil
}

// SearchByWorld returns up to limit NPCs whose name, role, summary, or
// description contains the query, case-insensitively.
func (r *NPCRepository) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, role, summary
		FROM npcs
		WHERE world_id = $1 AND (name ILIKE $2 OR role ILIKE $2 OR summary ILIKE $2 OR description ILIKE $2)
		ORDER BY name ASC
		LIMIT $3
	`, worldID.String(), containsPattern(query), limit)
	if err != nil {
		return nil, oops.With("operation", "search npcs").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	return scanSearchRows(rows, "npcs")
}

// scanNPC scans a single NPC from a row.
// Callers are responsible for handling pgx.ErrNoRows.
func scanNPC(row pgx.Row) (*world.NPC, error) {
	var (
		npc        world.NPC
		idStr      string
		worldIDStr string
		primStr    *string
	)
	err := row.Scan(&idStr, &worldIDStr, &npc.Name, &npc.Role, &npc.Alignment, &npc.Summary,
		&npc.Description, &primStr, &npc.CreatedAt, &npc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return nil, oops.With("operation", "scan npc").Wrap(err)
	}

	if npc.ID, err = parseULID(idStr, "id"); err != nil {
		return nil, err
	}
	if npc.WorldID, err = parseULID(worldIDStr, "world_id"); err != nil {
		return nil, err
	}
	if npc.PrimaryLocationID, err = parseOptionalULID(primStr, "primary_location_id"); err != nil {
		return nil, err
	}
	return &npc, nil
}

// Compile-time interface check.
var _ world.NPCRepository = (*NPCRepository)(nil)
