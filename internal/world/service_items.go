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

// ListItems returns the world's items, most recently created first.
func (s *Service) ListItems(ctx context.Context, worldID ulid.ULID) ([]ItemSummary, error) {
	items, err := s.items.List(ctx, worldID)
	if err != nil {
		return nil, oops.With("world_id", worldID.String()).Wrapf(err, "failed to fetch items")
	}
	return items, nil
}

// GetItem retrieves an item scoped by world id.
func (s *Service) GetItem(ctx context.Context, worldID, id ulid.ULID) (*Item, error) {
	return s.items.Get(ctx, worldID, id)
}

// guardItemRefs runs the relational guard for both item weak references.
// Checks run independently; the first failure aborts the operation before
// any write.
func (s *Service) guardItemRefs(ctx context.Context, worldID ulid.ULID, ownerNpc, location RefField) error {
	if ownerNpc.ID != nil {
		if err := s.guard.AssertOwnerNpc(ctx, worldID, *ownerNpc.ID); err != nil {
			return err
		}
	}
	if location.ID != nil {
		if err := s.guard.AssertLocation(ctx, worldID, *location.ID); err != nil {
			return err
		}
	}
	return nil
}

// CreateItem validates the form, guards the owner NPC and location
// references, and persists a new item in the world.
func (s *Service) CreateItem(ctx context.Context, worldID ulid.ULID, form url.Values) (ulid.ULID, error) {
	parsed, err := ParseItemForm(form)
	if err != nil {
		return ulid.ULID{}, err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return ulid.ULID{}, err
	}
	if err := s.guardItemRefs(ctx, worldID, parsed.OwnerNpc, parsed.Location); err != nil {
		return ulid.ULID{}, err
	}
	now := time.Now().UTC()
	item := &Item{
		ID:          ulid.Make(),
		WorldID:     worldID,
		Name:        parsed.Name,
		Type:        parsed.Type,
		Rarity:      parsed.Rarity,
		Summary:     parsed.Summary,
		Description: parsed.Description,
		OwnerNpcID:  parsed.OwnerNpc.ID,
		LocationID:  parsed.Location.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return ulid.ULID{}, err
	}
	s.invalidate(listPath(worldID, KindItem))
	return item.ID, nil
}

// UpdateItem validates the form and updates the item. Both weak references
// are tri-state; set references are guarded before the write.
func (s *Service) UpdateItem(ctx context.Context, worldID, id ulid.ULID, form url.Values) error {
	parsed, err := ParseItemForm(form)
	if err != nil {
		return err
	}
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	if err := s.guardItemRefs(ctx, worldID, parsed.OwnerNpc, parsed.Location); err != nil {
		return err
	}
	upd := &ItemUpdate{
		ID:          id,
		WorldID:     worldID,
		Name:        parsed.Name,
		Type:        parsed.Type,
		Rarity:      parsed.Rarity,
		Summary:     parsed.Summary,
		Description: parsed.Description,
		OwnerNpc:    parsed.OwnerNpc,
		Location:    parsed.Location,
	}
	if err := s.items.Update(ctx, upd); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindItem), detailPath(worldID, KindItem, id))
	return nil
}

// DeleteItem removes the item under the world.
func (s *Service) DeleteItem(ctx context.Context, worldID, id ulid.ULID) error {
	if _, err := s.requirePrincipal(ctx); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, worldID, id); err != nil {
		return err
	}
	s.invalidate(listPath(worldID, KindItem))
	return nil
}
