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

// ListNPCs returns the world's NPCs, most recently created first.
func (s *Service) ListNPCs(ctx context.Context, worldID ulid.ULID) ([]NPCSummary, error) {
	npcs, err := s.npcs.List(ctx, worldID)
	if err != nil {
		return nil, oops.With("world_id", worldID.String()).Wrapf(err, "failed to fetch npcs")
	}
	return npcs, nil
}

// GetNPC retrieves an NPC scoped by world id.
func (s *Service) GetNPC(ctx context.Context, worldID, id ulid.ULID) (*NPC, error) {
	return s.npcs.Get(ctx, worldID, id)
}

// CreateNPC validates the form, runs the relational guard on the primary
// location reference, and persists a new NPC in the world.
func (s *Service) CreateNPC(ctx context.Context, worldID ulid.ULID, form url.Values) (ulid.ULID, error) {
	parsed, err := ParseNPCForm(form)
	if err != nil {
		return ulid.ULID{}, err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return ulid.ULID{}, err
	}
	if parsed.PrimaryLocation.ID != nil {
		if err := s.guard.AssertPrimaryLocation(ctx, worldID, *parsed.PrimaryLocation.ID); err != nil {
			return ulid.ULID{}, err
		}
	}
	now := time.Now().UTC()
	npc := &NPC{
		ID:                ulid.Make(),
		WorldID:           worldID,
		Name:              parsed.Name,
		Role:              parsed.Role,
		Alignment:         parsed.Alignment,
		Summary:           parsed.Summary,
		Description:       parsed.Description,
		PrimaryLocationID: parsed.PrimaryLocation.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.npcs.Create(ctx, npc); err != nil {
		return ulid.ULID{}, err
	}
	s.invalidate(listPath(worldID, KindNPC))
	return npc.ID, nil
}

// UpdateNPC validates the form and updates the NPC. The primary location
// reference is tri-state: absent leaves the relation untouched, empty clears
// it, and a non-empty id is guarded before the write.
func (s *Service) UpdateNPC(ctx context.Context, worldID, id ulid.ULID, form url.Values) error {
	parsed, err := ParseNPCForm(form)
	if err != nil {
		return err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	if parsed.PrimaryLocation.ID != nil {
		if err := s.guard.AssertPrimaryLocation(ctx, worldID, *parsed.PrimaryLocation.ID); err != nil {
			return err
		}
	}
	upd := &NPCUpdate{
		ID:              id,
		WorldID:         worldID,
		Name:            parsed.Name,
		Role:            parsed.Role,
		Alignment:       parsed.Alignment,
		Summary:         parsed.Summary,
		Description:     parsed.Description,
		PrimaryLocation: parsed.PrimaryLocation,
	}
	if err := s.npcs.Update(ctx, upd); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindNPC), detailPath(worldID, KindNPC, id))
	return nil
}

// DeleteNPC removes the NPC under the world.
func (s *Service) DeleteNPC(ctx context.Context, worldID, id ulid.ULID) error {
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	if err := s.npcs.Delete(ctx, worldID, id); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindNPC))
	return nil
}
