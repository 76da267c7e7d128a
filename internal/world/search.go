// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

const (
	// MinSearchLength is the shortest query the search engine will run.
	MinSearchLength = 1
	// MaxSearchLength is the longest query the search engine will run.
	MaxSearchLength = 80

	perKindLimit = 6
	overallLimit = 20

	rankExact    = 0
	rankPrefix   = 1
	rankContains = 2
	rankOther    = 50
	rankUntitled = 999
)

// SearchResult is a single ranked hit from the cross-entity search.
type SearchResult struct {
	Kind     Kind      `json:"kind"`
	ID       ulid.ULID `json:"id"`
	WorldID  ulid.ULID `json:"world_id"`
	Title    string    `json:"title"`
	Subtitle *string   `json:"subtitle,omitempty"`
	Href     string    `json:"href"`
}

// Search runs the query against locations, NPCs, items, and gods of a world
// concurrently and returns a merged, ranked result list. A kind whose lookup
// fails contributes no results; the remaining kinds still answer.
func (s *Service) Search(ctx context.Context, worldID ulid.ULID, query string) ([]SearchResult, error) {
	if _, err := s.requirePrincipal(ctx); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if runes := utf8.RuneCountInString(query); runes < MinSearchLength || runes > MaxSearchLength {
		return []SearchResult{}, nil
	}

	type kindSearch struct {
		kind   Kind
		search func(context.Context, ulid.ULID, string, int) ([]SearchRow, error)
	}
	searches := []kindSearch{
		{KindLocation, s.locations.SearchByWorld},
		{KindNPC, s.npcs.SearchByWorld},
		{KindItem, s.items.SearchByWorld},
		{KindGod, s.gods.SearchByWorld},
	}

	buckets := make([][]SearchResult, len(searches))
	var wg sync.WaitGroup
	for i, ks := range searches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := ks.search(ctx, worldID, query, perKindLimit)
			if err != nil {
				slog.DebugContext(ctx, "search kind failed",
					"kind", ks.kind, "world_id", worldID.String(), "error", err)
				return
			}
			results := make([]SearchResult, 0, len(rows))
			for _, row := range rows {
				results = append(results, SearchResult{
					Kind:     ks.kind,
					ID:       row.ID,
					WorldID:  worldID,
					Title:    row.Name,
					Subtitle: subtitle(row),
					Href:     fmt.Sprintf("/worlds/%s/%s/%s", worldID, ks.kind.Plural(), row.ID),
				})
			}
			buckets[i] = results
		}()
	}
	wg.Wait()

	merged := make([]SearchResult, 0, overallLimit)
	for _, bucket := range buckets {
		merged = append(merged, bucket...)
	}

	lowered := strings.ToLower(query)
	sort.SliceStable(merged, func(i, j int) bool {
		ri, rj := rank(merged[i].Title, lowered), rank(merged[j].Title, lowered)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(merged[i].Title) < strings.ToLower(merged[j].Title)
	})

	if len(merged) > overallLimit {
		merged = merged[:overallLimit]
	}
	return merged, nil
}

// subtitle prefers the row's summary and falls back to its secondary field
// (a location's type, an NPC's role, and so on).
func subtitle(row SearchRow) *string {
	if row.Summary != nil && *row.Summary != "" {
		return row.Summary
	}
	if row.Secondary != nil && *row.Secondary != "" {
		return row.Secondary
	}
	return nil
}

// rank scores a title against the lowercased query. Lower is better.
func rank(title, lowered string) int {
	if title == "" {
		return rankUntitled
	}
	t := strings.ToLower(title)
	switch {
	case t == lowered:
		return rankExact
	case strings.HasPrefix(t, lowered):
		return rankPrefix
	case strings.Contains(t, lowered):
		return rankContains
	default:
		return rankOther
	}
}
