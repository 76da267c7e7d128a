// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"context"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/realmwright/realmwright/internal/auth"
	"github.com/realmwright/realmwright/internal/view"
)

// ServiceConfig holds dependencies for Service.
type ServiceConfig struct {
	Worlds    WorldRepository
	Locations LocationRepository
	NPCs      NPCRepository
	Items     ItemRepository
	Gods      GodRepository
	Identity  auth.Identity
	Views     view.Invalidator
}

// Service provides the request-scoped data-access operations over the entity
// repositories. Mutations require an authenticated principal, run validation
// and the relational guard before any write, and invalidate the affected
// views afterwards. The service holds no mutable state; concurrent requests
// are serialized only by the store's own transaction semantics.
type Service struct {
	worlds    WorldRepository
	locations LocationRepository
	npcs      NPCRepository
	items     ItemRepository
	gods      GodRepository
	identity  auth.Identity
	views     view.Invalidator
	guard     *Guard
}

// NewService creates a new Service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		worlds:    cfg.Worlds,
		locations: cfg.Locations,
		npcs:      cfg.NPCs,
		items:     cfg.Items,
		gods:      cfg.Gods,
		identity:  cfg.Identity,
		views:     cfg.Views,
		guard:     NewGuard(cfg.Locations, cfg.NPCs),
	}
}

// requirePrincipal resolves the current principal or fails with
// auth.ErrNotAuthenticated, which callers translate into a sign-in redirect.
func (s *Service) requirePrincipal(ctx context.Context) (*auth.Principal, error) {
	p, err := s.identity.CurrentUser(ctx)
	if err != nil || p == nil {
		return nil, auth.ErrNotAuthenticated
	}
	return p, nil
}

func (s *Service) invalidate(paths ...string) {
	if s.views != nil {
		s.views.Invalidate(paths...)
	}
}

func listPath(worldID ulid.ULID, kind Kind) string {
	return "/worlds/" + worldID.String() + "/" + kind.Plural()
}

func detailPath(worldID ulid.ULID, kind Kind, id ulid.ULID) string {
	return listPath(worldID, kind) + "/" + id.String()
}

// ListWorlds returns the caller's worlds, most recently created first.
func (s *Service) ListWorlds(ctx context.Context) ([]WorldSummary, error) {
	p, err := s.requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	worlds, err := s.worlds.List(ctx, p.ID)
	if err != nil {
		return nil, oops.With("owner_id", p.ID.String()).Wrapf(err, "failed to fetch worlds")
	}
	return worlds, nil
}

// GetWorld retrieves a world by id.
func (s *Service) GetWorld(ctx context.Context, id ulid.ULID) (*World, error) {
	w, err := s.worlds.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// CreateWorld validates the form and persists a new world owned by the
// current principal. The slug is derived from the name.
func (s *Service) CreateWorld(ctx context.Context, form url.Values) (ulid.ULID, error) {
	parsed, err := ParseWorldForm(form)
	if err != nil {
		return ulid.ULID{}, err
	}
	p, err := s.requirePrincipal(ctx)
	if err != nil {
		return ulid.ULID{}, err
	}
	w := &World{
		ID:          ulid.Make(),
		OwnerID:     p.ID,
		Name:        parsed.Name,
		Slug:        Slugify(parsed.Name),
		Summary:     parsed.Summary,
		Description: parsed.Description,
		IsPrivate:   parsed.IsPrivate,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.worlds.Create(ctx, w); err != nil {
		return ulid.ULID{}, err
	}
	s.invalidate("/worlds")
	return w.ID, nil
}
