// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"context"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// ListLocations returns the world's locations, most recently created first.
// The result is never nil; a world with no locations yields an empty slice.
func (s *Service) ListLocations(ctx context.Context, worldID ulid.ULID) ([]LocationSummary, error) {
	locations, err := s.locations.List(ctx, worldID)
	if err != nil {
		return nil, oops.With("world_id", worldID.String()).Wrapf(err, "failed to fetch locations")
	}
	return locations, nil
}

// GetLocation retrieves a location scoped by world id. A valid location id
// under a different world reports ErrNotFound.
func (s *Service) GetLocation(ctx context.Context, worldID, id ulid.ULID) (*Location, error) {
	return s.locations.Get(ctx, worldID, id)
}

// CreateLocation validates the form and persists a new location in the world.
func (s *Service) CreateLocation(ctx context.Context, worldID ulid.ULID, form url.Values) (ulid.ULID, error) {
	parsed, err := ParseLocationForm(form)
	if err != nil {
		return ulid.ULID{}, err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return ulid.ULID{}, err
	}
	now := time.Now().UTC()
	loc := &Location{
		ID:          ulid.Make(),
		WorldID:     worldID,
		Name:        parsed.Name,
		Type:        parsed.Type,
		Summary:     parsed.Summary,
		Description: parsed.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.locations.Create(ctx, loc); err != nil {
		return ulid.ULID{}, err
	}
	s.invalidate(listPath(worldID, KindLocation))
	return loc.ID, nil
}

// UpdateLocation validates the form and updates the location. The update
// predicate includes both the entity id and the world id.
func (s *Service) UpdateLocation(ctx context.Context, worldID, id ulid.ULID, form url.Values) error {
	parsed, err := ParseLocationForm(form)
	if err != nil {
		return err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	upd := &LocationUpdate{
		ID:          id,
		WorldID:     worldID,
		Name:        parsed.Name,
		Type:        parsed.Type,
		Summary:     parsed.Summary,
		Description: parsed.Description,
	}
	if err := s.locations.Update(ctx, upd); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindLocation), detailPath(worldID, KindLocation, id))
	return nil
}

// DeleteLocation removes the location. Deleting an id that no longer exists
// under the world reports ErrNotFound.
func (s *Service) DeleteLocation(ctx context.Context, worldID, id ulid.ULID) error {
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	if err := s.locations.Delete(ctx, worldID, id); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindLocation))
	return nil
}
