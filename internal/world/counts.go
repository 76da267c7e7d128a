// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"
)

// Counts holds the per-world entity counts shown on the dashboard.
type Counts struct {
	Locations int64 `json:"locations"`
	NPCs      int64 `json:"npcs"`
	Items     int64 `json:"items"`
	Gods      int64 `json:"gods"`
}

// DashboardCounts computes the four entity counts for a world concurrently.
// A failure in any one count aborts the whole aggregate with an error naming
// the failing entity kind; partial counts are never returned.
func (s *Service) DashboardCounts(ctx context.Context, worldID ulid.ULID) (Counts, error) {
	var counts Counts
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.locations.CountByWorld(ctx, worldID)
		if err != nil {
			return oops.With("world_id", worldID.String()).Wrapf(err, "failed to count locations")
		}
		counts.Locations = n
		return nil
	})
	g.Go(func() error {
		n, err := s.npcs.CountByWorld(ctx, worldID)
		if err != nil {
			return oops.With("world_id", worldID.String()).Wrapf(err, "failed to count npcs")
		}
		counts.NPCs = n
		return nil
	})
	g.Go(func() error {
		n, err := s.items.CountByWorld(ctx, worldID)
		if err != nil {
			return oops.With("world_id", worldID.String()).Wrapf(err, "failed to count items")
		}
		counts.Items = n
		return nil
	})
	g.Go(func() error {
		n, err := s.gods.CountByWorld(ctx, worldID)
		if err != nil {
			return oops.With("world_id", worldID.String()).Wrapf(err, "failed to count gods")
		}
		counts.Gods = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return counts, nil
}
