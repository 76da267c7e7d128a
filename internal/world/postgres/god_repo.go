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

// GodRepository implements world.GodRepository using PostgreSQL.
type GodRepository struct {
	db DB
}

// NewGodRepository creates a new GodRepository.
func NewGodRepository(db DB) *GodRepository {
	return &GodRepository{db: db}
}

// List returns the world's gods, most recently created first.
func (r *GodRepository) List(ctx context.Context, worldID ulid.ULID) ([]world.GodSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, domain, summary, created_at
		FROM gods WHERE world_id = $1 ORDER BY created_at DESC
	`, worldID.String())
	if err != nil {
		return nil, oops.With("operation", "list gods").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	gods := make([]world.GodSummary, 0)
	for rows.Next() {
		var (
			god   world.GodSummary
			idStr string
		)
		if err := rows.Scan(&idStr, &god.Name, &god.Domain, &god.Summary, &god.CreatedAt); err != nil {
			return nil, oops.With("operation", "scan god").Wrap(err)
		}
		if god.ID, err = parseULID(idStr, "id"); err != nil {
			return nil, err
		}
		gods = append(gods, god)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate gods").Wrap(err)
	}
	return gods, nil
}

// Get retrieves a god scoped to its world.
func (r *GodRepository) Get(ctx context.Context, worldID, id ulid.ULID) (*world.God, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, world_id, name, domain, alignment, symbol, summary, description, created_at, updated_at
		FROM gods WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())

	god, err := scanGod(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("GOD_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get god").With("id", id.String()).Wrap(err)
	}
	return god, nil
}

// Create persists a new god.
// Callers must validate the god before calling this method.
func (r *GodRepository) Create(ctx context.Context, god *world.God) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO gods (id, world_id, name, domain, alignment, symbol, summary, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, god.ID.String(), god.WorldID.String(), god.Name, god.Domain, god.Alignment, god.Symbol,
		god.Summary, god.Description, god.CreatedAt, god.UpdatedAt)
	if err != nil {
		return oops.With("operation", "create god").With("id", god.ID.String()).Wrap(err)
	}
	return nil
}

// Update modifies an existing god.
func (r *GodRepository) Update(ctx context.Context, upd *world.GodUpdate) error {
	result, err := r.db.Exec(ctx, `
		UPDATE gods SET name = $3, domain = $4, alignment = $5, symbol = $6, summary = $7,
			description = $8, updated_at = NOW()
		WHERE id = $1 AND world_id = $2
	`, upd.ID.String(), upd.WorldID.String(), upd.Name, upd.Domain, upd.Alignment, upd.Symbol,
		upd.Summary, upd.Description)
	if err != nil {
		return oops.With("operation", "update god").With("id", upd.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("GOD_NOT_FOUND").With("id", upd.ID.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// Delete removes a god scoped to its world.
func (r *GodRepository) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	result, err := r.db.Exec(ctx, `
		DELETE FROM gods WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())
	if err != nil {
		return oops.With("operation", "delete god").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("GOD_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// CountByWorld returns the number of gods in the world.
func (r *GodRepository) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM gods WHERE world_id = $1
	`, worldID.String()).Scan(&count)
	if err != nil {
		return 0, oops.With("operation", "count gods").With("world_id", worldID.String()).Wrap(err)
	}
	return count, nil
}

// SearchByWorld returns up to limit gods whose name, domain, summary, or
// description contains the query, case-insensitively.
func (r *GodRepository) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, domain, summary
		FROM gods
		WHERE world_id = $1 AND (name ILIKE $2 OR domain ILIKE $2 OR summary ILIKE $2 OR description ILIKE $2)
		ORDER BY name ASC
		LIMIT $3
	`, worldID.String(), containsPattern(query), limit)
	if err != nil {
		return nil, oops.With("operation", "search gods").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	return scanSearchRows(rows, "gods")
}

// scanGod scans a single god from a row.
// Callers are responsible for handling pgx.ErrNoRows.
func scanGod(row pgx.Row) (*world.God, error) {
	var (
		god        world.God
		idStr      string
		worldIDStr string
	)
	err := row.Scan(&idStr, &worldIDStr, &god.Name, &god.Domain, &god.Alignment, &god.Symbol,
		&god.Summary, &god.Description, &god.CreatedAt, &god.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return nil, oops.With("operation", "scan god").Wrap(err)
	}

	if god.ID, err = parseULID(idStr, "id"); err != nil {
		return nil, err
	}
	if god.WorldID, err = parseULID(worldIDStr, "world_id"); err != nil {
		return nil, err
	}
	return &god, nil
}

// Compile-time interface check.
var _ world.GodRepository = (*GodRepository)(nil)
