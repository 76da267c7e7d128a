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

// LocationRepository implements world.LocationRepository using PostgreSQL.
type LocationRepository struct {
	db DB
}

// NewLocationRepository creates a new LocationRepository.
func NewLocationRepository(db DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// List returns the world's locations, most recently created first.
func (r *LocationRepository) List(ctx context.Context, worldID ulid.ULID) ([]world.LocationSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, type, summary, created_at
		FROM locations WHERE world_id = $1 ORDER BY created_at DESC
	`, worldID.String())
	if err != nil {
		return nil, oops.With("operation", "list locations").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	locations := make([]world.LocationSummary, 0)
	for rows.Next() {
		var (
			loc   world.LocationSummary
			idStr string
		)
		if err := rows.Scan(&idStr, &loc.Name, &loc.Type, &loc.Summary, &loc.CreatedAt); err != nil {
			return nil, oops.With("operation", "scan location").Wrap(err)
		}
		if loc.ID, err = parseULID(idStr, "id"); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate locations").Wrap(err)
	}
	return locations, nil
}

// Get retrieves a location scoped to its world. A matching id in a different
// world is indistinguishable from no row at all.
func (r *LocationRepository) Get(ctx context.Context, worldID, id ulid.ULID) (*world.Location, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, world_id, name, type, summary, description, created_at, updated_at
		FROM locations WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())

	loc, err := scanLocation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("LOCATION_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get location").With("id", id.String()).Wrap(err)
	}
	return loc, nil
}

// Create persists a new location.
// Callers must validate the location before calling this method.
func (r *LocationRepository) Create(ctx context.Context, loc *world.Location) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO locations (id, world_id, name, type, summary, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, loc.ID.String(), loc.WorldID.String(), loc.Name, loc.Type, loc.Summary, loc.Description,
		loc.CreatedAt, loc.UpdatedAt)
	if err != nil {
		return oops.With("operation", "create location").With("id", loc.ID.String()).Wrap(err)
	}
	return nil
}

// Update modifies an existing location. Both the id and the world id
// participate in the predicate.
func (r *LocationRepository) Update(ctx context.Context, upd *world.LocationUpdate) error {
	result, err := r.db.Exec(ctx, `
		UPDATE locations SET name = $3, type = $4, summary = $5, description = $6, updated_at = NOW()
		WHERE id = $1 AND world_id = $2
	`, upd.ID.String(), upd.WorldID.String(), upd.Name, upd.Type, upd.Summary, upd.Description)
	if err != nil {
		return oops.With("operation", "update location").With("id", upd.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("LOCATION_NOT_FOUND").With("id", upd.ID.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// Delete removes a location scoped to its world.
func (r *LocationRepository) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	result, err := r.db.Exec(ctx, `
		DELETE FROM locations WHERE id = $1 AND world_id = $2
	`, id.String(), worldID.String())
	if err != nil {
		return oops.With("operation", "delete location").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("LOCATION_NOT_FOUND").With("id", id.String()).Wrap(world.ErrNotFound)
	}
	return nil
}

// ExistsInWorld reports whether the id resolves to a location in the world.
func (r *LocationRepository) ExistsInWorld(ctx context.Context, worldID, id ulid.ULID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM locations WHERE id = $1 AND world_id = $2)
	`, id.String(), worldID.String()).Scan(&exists)
	if err != nil {
		return false, oops.With("operation", "location exists in world").With("id", id.String()).Wrap(err)
	}
	return exists, nil
}

// CountByWorld returns the number of locations in the world.
func (r *LocationRepository) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM locations WHERE world_id = $1
	`, worldID.String()).Scan(&count)
	if err != nil {
		return 0, oops.With("operation", "count locations").With("world_id", worldID.String()).Wrap(err)
	}
	return count, nil
}

// SearchByWorld returns up to limit locations whose name, type, summary, or
// description contains the query, case-insensitively.
func (r *LocationRepository) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, type, summary
		FROM locations
		WHERE world_id = $1 AND (name ILIKE $2 OR type ILIKE $2 OR summary ILIKE $2 OR description ILIKE $2)
		ORDER BY name ASC
		LIMIT $3
	`, worldID.String(), containsPattern(query), limit)
	if err != nil {
		return nil, oops.With("operation", "search locations").With("world_id", worldID.String()).Wrap(err)
	}
	defer rows.Close()

	return scanSearchRows(rows, "locations")
}

// scanLocation scans a single location from a row.
// Callers are responsible for handling pgx.ErrNoRows.
func scanLocation(row pgx.Row) (*world.Location, error) {
	var (
		loc        world.Location
		idStr      string
		worldIDStr string
	)
	err := row.Scan(&idStr, &worldIDStr, &loc.Name, &loc.Type, &loc.Summary, &loc.Description,
		&loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return nil, oops.With("operation", "scan location").Wrap(err)
	}

	if loc.ID, err = parseULID(idStr, "id"); err != nil {
		return nil, err
	}
	if loc.WorldID, err = parseULID(worldIDStr, "world_id"); err != nil {
		return nil, err
	}
	return &loc, nil
}

// scanSearchRows scans search projections shared by all entity repositories.
func scanSearchRows(rows pgx.Rows, table string) ([]world.SearchRow, error) {
	results := make([]world.SearchRow, 0)
	for rows.Next() {
		var (
			sr    world.SearchRow
			idStr string
		)
		if err := rows.Scan(&idStr, &sr.Name, &sr.Secondary, &sr.Summary); err != nil {
			return nil, oops.With("operation", "scan search row").With("table", table).Wrap(err)
		}
		id, err := parseULID(idStr, "id")
		if err != nil {
			return nil, err
		}
		sr.ID = id
		results = append(results, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate search rows").With("table", table).Wrap(err)
	}
	return results, nil
}

// Compile-time interface check.
var _ world.LocationRepository = (*LocationRepository)(nil)
