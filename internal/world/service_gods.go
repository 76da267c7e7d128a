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

// ListGods returns the world's gods, most recently created first.
func (s *Service) ListGods(ctx context.Context, worldID ulid.ULID) ([]GodSummary, error) {
	gods, err := s.gods.List(ctx, worldID)
	if err != nil {
		return nil, oops.With("world_id", worldID.String()).Wrapf(err, "failed to fetch gods")
	}
	return gods, nil
}

// GetGod retrieves a god scoped by world id.
func (s *Service) GetGod(ctx context.Context, worldID, id ulid.ULID) (*God, error) {
	return s.gods.Get(ctx, worldID, id)
}

// CreateGod validates the form and persists a new god in the world.
func (s *Service) CreateGod(ctx context.Context, worldID ulid.ULID, form url.Values) (ulid.ULID, error) {
	parsed, err := ParseGodForm(form)
	if err != nil {
		return ulid.ULID{}, err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return ulid.ULID{}, err
	}
	now := time.Now().UTC()
	god := &God{
		ID:          ulid.Make(),
		WorldID:     worldID,
		Name:        parsed.Name,
		Domain:      parsed.Domain,
		Alignment:   parsed.Alignment,
		Symbol:      parsed.Symbol,
		Summary:     parsed.Summary,
		Description: parsed.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.gods.Create(ctx, god); err != nil {
		return ulid.ULID{}, err
	}
	s.invalidate(listPath(worldID, KindGod))
	return god.ID, nil
}

// UpdateGod validates the form and updates the god.
func (s *Service) UpdateGod(ctx context.Context, worldID, id ulid.ULID, form url.Values) error {
	parsed, err := ParseGodForm(form)
	if err != nil {
		return err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	upd := &GodUpdate{
		ID:          id,
		WorldID:     worldID,
		Name:        parsed.Name,
		Domain:      parsed.Domain,
		Alignment:   parsed.Alignment,
		Symbol:      parsed.Symbol,
		Summary:     parsed.Summary,
		Description: parsed.Description,
	}
	if err := s.gods.Update(ctx, upd); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindGod), detailPath(worldID, KindGod, id))
	return nil
}

// DeleteGod removes the god under the world.
func (s *Service) DeleteGod(ctx context.Context, worldID, id ulid.ULID) error {
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	if err := s.gods.Delete(ctx, worldID, id); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindGod))
	return nil
}
