// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/realmwright/realmwright/internal/auth"
	"github.com/realmwright/realmwright/internal/world"
)

// In-memory repositories backing the handler tests. They honor the same
// contracts as the postgres implementations: dual id+world predicates,
// ErrNotFound on missing rows, case-insensitive lookups for accounts.

type memUsers struct {
	mu    sync.Mutex
	users map[ulid.ULID]*auth.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[ulid.ULID]*auth.User)}
}

func (m *memUsers) Create(_ context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, user.Username) || strings.EqualFold(u.Email, user.Email) {
			return auth.ErrAlreadyExists
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id ulid.ULID) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, auth.ErrNotFound
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (m *memUsers) Update(_ context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return auth.ErrNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]*auth.Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]*auth.Session)}
}

func (m *memSessions) Create(_ context.Context, session *auth.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *session
	m.sessions[session.TokenHash] = &cp
	return nil
}

func (m *memSessions) GetByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[tokenHash]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, auth.ErrNotFound
}

func (m *memSessions) UpdateLastSeen(_ context.Context, id ulid.ULID, lastSeen time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.ID == id {
			s.LastSeenAt = lastSeen
			return nil
		}
	}
	return auth.ErrNotFound
}

func (m *memSessions) Delete(_ context.Context, id ulid.ULID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for hash, s := range m.sessions {
		if s.ID == id {
			delete(m.sessions, hash)
			return nil
		}
	}
	return auth.ErrNotFound
}

func (m *memSessions) DeleteByUser(_ context.Context, userID ulid.ULID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for hash, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, hash)
		}
	}
	return nil
}

func (m *memSessions) DeleteExpired(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	now := time.Now()
	for hash, s := range m.sessions {
		if s.ExpiresAt.Before(now) {
			delete(m.sessions, hash)
			n++
		}
	}
	return n, nil
}

type memWorlds struct {
	mu     sync.Mutex
	worlds map[ulid.ULID]*world.World
}

func newMemWorlds() *memWorlds {
	return &memWorlds{worlds: make(map[ulid.ULID]*world.World)}
}

func (m *memWorlds) List(_ context.Context, ownerID ulid.ULID) ([]world.WorldSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.WorldSummary{}
	for _, w := range m.worlds {
		if w.OwnerID != ownerID {
			continue
		}
		out = append(out, world.WorldSummary{
			ID:        w.ID,
			Name:      w.Name,
			Slug:      w.Slug,
			Summary:   w.Summary,
			IsPrivate: w.IsPrivate,
			CreatedAt: w.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) > 0 })
	return out, nil
}

func (m *memWorlds) Get(_ context.Context, id ulid.ULID) (*world.World, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.worlds[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, world.ErrNotFound
}

func (m *memWorlds) Create(_ context.Context, w *world.World) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *w
	m.worlds[w.ID] = &cp
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type memLocations struct {
	mu   sync.Mutex
	rows map[ulid.ULID]*world.Location
}

func newMemLocations() *memLocations {
	return &memLocations{rows: make(map[ulid.ULID]*world.Location)}
}

func (m *memLocations) List(_ context.Context, worldID ulid.ULID) ([]world.LocationSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.LocationSummary{}
	for _, r := range m.rows {
		if r.WorldID != worldID {
			continue
		}
		out = append(out, world.LocationSummary{
			ID: r.ID, Name: r.Name, Type: r.Type, Summary: r.Summary, CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) < 0 })
	return out, nil
}

func (m *memLocations) Get(_ context.Context, worldID, id ulid.ULID) (*world.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		cp := *r
		return &cp, nil
	}
	return nil, world.ErrNotFound
}

func (m *memLocations) Create(_ context.Context, loc *world.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *loc
	m.rows[loc.ID] = &cp
	return nil
}

func (m *memLocations) Update(_ context.Context, upd *world.LocationUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[upd.ID]
	if !ok || r.WorldID != upd.WorldID {
		return world.ErrNotFound
	}
	r.Name = upd.Name
	r.Type = upd.Type
	r.Summary = upd.Summary
	r.Description = upd.Description
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memLocations) Delete(_ context.Context, worldID, id ulid.ULID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		delete(m.rows, id)
		return nil
	}
	return world.ErrNotFound
}

func (m *memLocations) ExistsInWorld(_ context.Context, worldID, id ulid.ULID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	return ok && r.WorldID == worldID, nil
}

func (m *memLocations) CountByWorld(_ context.Context, worldID ulid.ULID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if r.WorldID == worldID {
			n++
		}
	}
	return n, nil
}

func (m *memLocations) SearchByWorld(_ context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.SearchRow{}
	for _, r := range m.rows {
		if r.WorldID == worldID && containsFold(r.Name, query) && len(out) < limit {
			out = append(out, world.SearchRow{ID: r.ID, Name: r.Name, Secondary: r.Type, Summary: r.Summary})
		}
	}
	return out, nil
}

type memNPCs struct {
	mu   sync.Mutex
	rows map[ulid.ULID]*world.NPC
}

func newMemNPCs() *memNPCs {
	return &memNPCs{rows: make(map[ulid.ULID]*world.NPC)}
}

func (m *memNPCs) List(_ context.Context, worldID ulid.ULID) ([]world.NPCSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.NPCSummary{}
	for _, r := range m.rows {
		if r.WorldID != worldID {
			continue
		}
		out = append(out, world.NPCSummary{
			ID: r.ID, Name: r.Name, Role: r.Role, Summary: r.Summary,
			PrimaryLocationID: r.PrimaryLocationID, CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) < 0 })
	return out, nil
}

func (m *memNPCs) Get(_ context.Context, worldID, id ulid.ULID) (*world.NPC, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		cp := *r
		return &cp, nil
	}
	return nil, world.ErrNotFound
}

func (m *memNPCs) Create(_ context.Context, npc *world.NPC) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *npc
	m.rows[npc.ID] = &cp
	return nil
}

func (m *memNPCs) Update(_ context.Context, upd *world.NPCUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[upd.ID]
	if !ok || r.WorldID != upd.WorldID {
		return world.ErrNotFound
	}
	r.Name = upd.Name
	r.Role = upd.Role
	r.Alignment = upd.Alignment
	r.Summary = upd.Summary
	r.Description = upd.Description
	if upd.PrimaryLocation.Present {
		r.PrimaryLocationID = upd.PrimaryLocation.ID
	}
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memNPCs) Delete(_ context.Context, worldID, id ulid.ULID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		delete(m.rows, id)
		return nil
	}
	return world.ErrNotFound
}

func (m *memNPCs) ExistsInWorld(_ context.Context, worldID, id ulid.ULID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	return ok && r.WorldID == worldID, nil
}

func (m *memNPCs) CountByWorld(_ context.Context, worldID ulid.ULID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if r.WorldID == worldID {
			n++
		}
	}
	return n, nil
}

func (m *memNPCs) SearchByWorld(_ context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.SearchRow{}
	for _, r := range m.rows {
		if r.WorldID == worldID && containsFold(r.Name, query) && len(out) < limit {
			out = append(out, world.SearchRow{ID: r.ID, Name: r.Name, Secondary: r.Role, Summary: r.Summary})
		}
	}
	return out, nil
}

type memItems struct {
	mu   sync.Mutex
	rows map[ulid.ULID]*world.Item
}

func newMemItems() *memItems {
	return &memItems{rows: make(map[ulid.ULID]*world.Item)}
}

func (m *memItems) List(_ context.Context, worldID ulid.ULID) ([]world.ItemSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.ItemSummary{}
	for _, r := range m.rows {
		if r.WorldID != worldID {
			continue
		}
		out = append(out, world.ItemSummary{
			ID: r.ID, Name: r.Name, Type: r.Type, Rarity: r.Rarity, Summary: r.Summary, CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) < 0 })
	return out, nil
}

func (m *memItems) Get(_ context.Context, worldID, id ulid.ULID) (*world.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		cp := *r
		return &cp, nil
	}
	return nil, world.ErrNotFound
}

func (m *memItems) Create(_ context.Context, item *world.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *item
	m.rows[item.ID] = &cp
	return nil
}

func (m *memItems) Update(_ context.Context, upd *world.ItemUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[upd.ID]
	if !ok || r.WorldID != upd.WorldID {
		return world.ErrNotFound
	}
	r.Name = upd.Name
	r.Type = upd.Type
	r.Rarity = upd.Rarity
	r.Summary = upd.Summary
	r.Description = upd.Description
	if upd.OwnerNpc.Present {
		r.OwnerNpcID = upd.OwnerNpc.ID
	}
	if upd.Location.Present {
		r.LocationID = upd.Location.ID
	}
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memItems) Delete(_ context.Context, worldID, id ulid.ULID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		delete(m.rows, id)
		return nil
	}
	return world.ErrNotFound
}

func (m *memItems) CountByWorld(_ context.Context, worldID ulid.ULID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if r.WorldID == worldID {
			n++
		}
	}
	return n, nil
}

func (m *memItems) SearchByWorld(_ context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.SearchRow{}
	for _, r := range m.rows {
		if r.WorldID == worldID && containsFold(r.Name, query) && len(out) < limit {
			out = append(out, world.SearchRow{ID: r.ID, Name: r.Name, Secondary: r.Type, Summary: r.Summary})
		}
	}
	return out, nil
}

type memGods struct {
	mu   sync.Mutex
	rows map[ulid.ULID]*world.God
}

func newMemGods() *memGods {
	return &memGods{rows: make(map[ulid.ULID]*world.God)}
}

func (m *memGods) List(_ context.Context, worldID ulid.ULID) ([]world.GodSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.GodSummary{}
	for _, r := range m.rows {
		if r.WorldID != worldID {
			continue
		}
		out = append(out, world.GodSummary{
			ID: r.ID, Name: r.Name, Domain: r.Domain, Summary: r.Summary, CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) < 0 })
	return out, nil
}

func (m *memGods) Get(_ context.Context, worldID, id ulid.ULID) (*world.God, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		cp := *r
		return &cp, nil
	}
	return nil, world.ErrNotFound
}

func (m *memGods) Create(_ context.Context, god *world.God) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *god
	m.rows[god.ID] = &cp
	return nil
}

func (m *memGods) Update(_ context.Context, upd *world.GodUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[upd.ID]
	if !ok || r.WorldID != upd.WorldID {
		return world.ErrNotFound
	}
	r.Name = upd.Name
	r.Domain = upd.Domain
	r.Alignment = upd.Alignment
	r.Symbol = upd.Symbol
	r.Summary = upd.Summary
	r.Description = upd.Description
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memGods) Delete(_ context.Context, worldID, id ulid.ULID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.WorldID == worldID {
		delete(m.rows, id)
		return nil
	}
	return world.ErrNotFound
}

func (m *memGods) CountByWorld(_ context.Context, worldID ulid.ULID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if r.WorldID == worldID {
			n++
		}
	}
	return n, nil
}

func (m *memGods) SearchByWorld(_ context.Context, worldID ulid.ULID, query string, limit int) ([]world.SearchRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []world.SearchRow{}
	for _, r := range m.rows {
		if r.WorldID == worldID && containsFold(r.Name, query) && len(out) < limit {
			out = append(out, world.SearchRow{ID: r.ID, Name: r.Name, Secondary: r.Domain, Summary: r.Summary})
		}
	}
	return out, nil
}

// Compile-time interface checks.
var (
	_ auth.UserRepository      = (*memUsers)(nil)
	_ auth.SessionRepository   = (*memSessions)(nil)
	_ world.WorldRepository    = (*memWorlds)(nil)
	_ world.LocationRepository = (*memLocations)(nil)
	_ world.NPCRepository      = (*memNPCs)(nil)
	_ world.ItemRepository     = (*memItems)(nil)
	_ world.GodRepository      = (*memGods)(nil)
)
