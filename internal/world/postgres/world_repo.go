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

// WorldRepository implements world.WorldRepository using PostgreSQL.
type WorldRepository struct {
	db DB
}

// NewWorldRepository creates a new WorldRepository.
func NewWorldRepository(db DB) *WorldRepository {
	return &WorldRepository{db: db}
}

// List returns the owner's worlds, most recently created first.
func (r *WorldRepository) List(ctx context.Context, ownerID ulid.ULID) ([]world.WorldSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, summary, is_private, created_at
		FROM worlds WHERE owner_id = $1 ORDER BY created_at DESC
	`, ownerID.String())
	if err != nil {
		return nil, oops.With("operation", "list worlds").With("owner_id", ownerID.String()).Wrap(err)
	}
	defer rows.Close()

	worlds := make([]world.WorldSummary, 0)
	for rows.Next() {
		var (
			w     world.WorldSummary
			idStr string
		)
		if err := rows.Scan(&idStr, &w.Name, &w.Slug, &w.Summary, &w.IsPrivate, &w.CreatedAt); err != nil {
			return nil, oops.With("operation", "scan world").Wrap(err)
		}
		if w.ID, err = parseULID(idStr, "id"); err != nil {
			return nil, err
		}
		worlds = append(worlds, w)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate worlds").Wrap(err)
	}
	return worlds, nil
}

// Get retrieves a world by ID.
func (r *WorldRepository) Get(ctx context.Context, id ulid.ULID) (*world.World, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, slug, summary, description, is_private, created_at
		FROM worlds WHERE id = $1
	`, id.String())

	var (
		w          world.World
		idStr      string
		ownerIDStr string
	)
	err := row.Scan(&idStr, &ownerIDStr, &w.Name, &w.Slug, &w.Summary, &w.Description, &w.IsPrivate, &w.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("WORLD_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get world").With("id", id.String()).Wrap(err)
	}

	if w.ID, err = parseULID(idStr, "id"); err != nil {
		return nil, err
	}
	if w.OwnerID, err = parseULID(ownerIDStr, "owner_id"); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persists a new world.
// Callers must validate the world before calling this method.
func (r *WorldRepository) Create(ctx context.Context, w *world.World) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO worlds (id, owner_id, name, slug, summary, description, is_private, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, w.ID.String(), w.OwnerID.String(), w.Name, w.Slug, w.Summary, w.Description, w.IsPrivate, w.CreatedAt)
	if err != nil {
		return oops.With("operation", "create world").With("id", w.ID.String()).Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ world.WorldRepository = (*WorldRepository)(nil)
