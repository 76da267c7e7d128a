// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/realmwright/realmwright/internal/auth"
	"github.com/realmwright/realmwright/internal/view"
)

// Repository fakes with per-method hooks. A nil hook returns zero values so
// tests only wire the calls they care about.

type fakeWorldRepo struct {
	listFn   func(ctx context.Context, ownerID ulid.ULID) ([]WorldSummary, error)
	getFn    func(ctx context.Context, id ulid.ULID) (*World, error)
	createFn func(ctx context.Context, w *World) error
}

func (f *fakeWorldRepo) List(ctx context.Context, ownerID ulid.ULID) ([]WorldSummary, error) {
	if f.listFn == nil {
		return []WorldSummary{}, nil
	}
	return f.listFn(ctx, ownerID)
}

func (f *fakeWorldRepo) Get(ctx context.Context, id ulid.ULID) (*World, error) {
	if f.getFn == nil {
		return nil, ErrNotFound
	}
	return f.getFn(ctx, id)
}

func (f *fakeWorldRepo) Create(ctx context.Context, w *World) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, w)
}

type fakeLocationRepo struct {
	listFn   func(ctx context.Context, worldID ulid.ULID) ([]LocationSummary, error)
	getFn    func(ctx context.Context, worldID, id ulid.ULID) (*Location, error)
	createFn func(ctx context.Context, loc *Location) error
	updateFn func(ctx context.Context, upd *LocationUpdate) error
	deleteFn func(ctx context.Context, worldID, id ulid.ULID) error
	existsFn func(ctx context.Context, worldID, id ulid.ULID) (bool, error)
	countFn  func(ctx context.Context, worldID ulid.ULID) (int64, error)
	searchFn func(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}

func (f *fakeLocationRepo) List(ctx context.Context, worldID ulid.ULID) ([]LocationSummary, error) {
	if f.listFn == nil {
		return []LocationSummary{}, nil
	}
	return f.listFn(ctx, worldID)
}

func (f *fakeLocationRepo) Get(ctx context.Context, worldID, id ulid.ULID) (*Location, error) {
	if f.getFn == nil {
		return nil, ErrNotFound
	}
	return f.getFn(ctx, worldID, id)
}

func (f *fakeLocationRepo) Create(ctx context.Context, loc *Location) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, loc)
}

func (f *fakeLocationRepo) Update(ctx context.Context, upd *LocationUpdate) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, upd)
}

func (f *fakeLocationRepo) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, worldID, id)
}

func (f *fakeLocationRepo) ExistsInWorld(ctx context.Context, worldID, id ulid.ULID) (bool, error) {
	if f.existsFn == nil {
		return true, nil
	}
	return f.existsFn(ctx, worldID, id)
}

func (f *fakeLocationRepo) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, worldID)
}

func (f *fakeLocationRepo) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error) {
	if f.searchFn == nil {
		return []SearchRow{}, nil
	}
	return f.searchFn(ctx, worldID, query, limit)
}

type fakeNPCRepo struct {
	listFn   func(ctx context.Context, worldID ulid.ULID) ([]NPCSummary, error)
	getFn    func(ctx context.Context, worldID, id ulid.ULID) (*NPC, error)
	createFn func(ctx context.Context, npc *NPC) error
	updateFn func(ctx context.Context, upd *NPCUpdate) error
	deleteFn func(ctx context.Context, worldID, id ulid.ULID) error
	existsFn func(ctx context.Context, worldID, id ulid.ULID) (bool, error)
	countFn  func(ctx context.Context, worldID ulid.ULID) (int64, error)
	searchFn func(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}

func (f *fakeNPCRepo) List(ctx context.Context, worldID ulid.ULID) ([]NPCSummary, error) {
	if f.listFn == nil {
		return []NPCSummary{}, nil
	}
	return f.listFn(ctx, worldID)
}

func (f *fakeNPCRepo) Get(ctx context.Context, worldID, id ulid.ULID) (*NPC, error) {
	if f.getFn == nil {
		return nil, ErrNotFound
	}
	return f.getFn(ctx, worldID, id)
}

func (f *fakeNPCRepo) Create(ctx context.Context, npc *NPC) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, npc)
}

func (f *fakeNPCRepo) Update(ctx context.Context, upd *NPCUpdate) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, upd)
}

func (f *fakeNPCRepo) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, worldID, id)
}

func (f *fakeNPCRepo) ExistsInWorld(ctx context.Context, worldID, id ulid.ULID) (bool, error) {
	if f.existsFn == nil {
		return true, nil
	}
	return f.existsFn(ctx, worldID, id)
}

func (f *fakeNPCRepo) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, worldID)
}

func (f *fakeNPCRepo) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error) {
	if f.searchFn == nil {
		return []SearchRow{}, nil
	}
	return f.searchFn(ctx, worldID, query, limit)
}

type fakeItemRepo struct {
	listFn   func(ctx context.Context, worldID ulid.ULID) ([]ItemSummary, error)
	getFn    func(ctx context.Context, worldID, id ulid.ULID) (*Item, error)
	createFn func(ctx context.Context, item *Item) error
	updateFn func(ctx context.Context, upd *ItemUpdate) error
	deleteFn func(ctx context.Context, worldID, id ulid.ULID) error
	countFn  func(ctx context.Context, worldID ulid.ULID) (int64, error)
	searchFn func(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}

func (f *fakeItemRepo) List(ctx context.Context, worldID ulid.ULID) ([]ItemSummary, error) {
	if f.listFn == nil {
		return []ItemSummary{}, nil
	}
	return f.listFn(ctx, worldID)
}

func (f *fakeItemRepo) Get(ctx context.Context, worldID, id ulid.ULID) (*Item, error) {
	if f.getFn == nil {
		return nil, ErrNotFound
	}
	return f.getFn(ctx, worldID, id)
}

func (f *fakeItemRepo) Create(ctx context.Context, item *Item) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, item)
}

func (f *fakeItemRepo) Update(ctx context.Context, upd *ItemUpdate) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, upd)
}

func (f *fakeItemRepo) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, worldID, id)
}

func (f *fakeItemRepo) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, worldID)
}

func (f *fakeItemRepo) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error) {
	if f.searchFn == nil {
		return []SearchRow{}, nil
	}
	return f.searchFn(ctx, worldID, query, limit)
}

type fakeGodRepo struct {
	listFn   func(ctx context.Context, worldID ulid.ULID) ([]GodSummary, error)
	getFn    func(ctx context.Context, worldID, id ulid.ULID) (*God, error)
	createFn func(ctx context.Context, god *God) error
	updateFn func(ctx context.Context, upd *GodUpdate) error
	deleteFn func(ctx context.Context, worldID, id ulid.ULID) error
	countFn  func(ctx context.Context, worldID ulid.ULID) (int64, error)
	searchFn func(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error)
}

func (f *fakeGodRepo) List(ctx context.Context, worldID ulid.ULID) ([]GodSummary, error) {
	if f.listFn == nil {
		return []GodSummary{}, nil
	}
	return f.listFn(ctx, worldID)
}

func (f *fakeGodRepo) Get(ctx context.Context, worldID, id ulid.ULID) (*God, error) {
	if f.getFn == nil {
		return nil, ErrNotFound
	}
	return f.getFn(ctx, worldID, id)
}

func (f *fakeGodRepo) Create(ctx context.Context, god *God) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, god)
}

func (f *fakeGodRepo) Update(ctx context.Context, upd *GodUpdate) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, upd)
}

func (f *fakeGodRepo) Delete(ctx context.Context, worldID, id ulid.ULID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, worldID, id)
}

func (f *fakeGodRepo) CountByWorld(ctx context.Context, worldID ulid.ULID) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, worldID)
}

func (f *fakeGodRepo) SearchByWorld(ctx context.Context, worldID ulid.ULID, query string, limit int) ([]SearchRow, error) {
	if f.searchFn == nil {
		return []SearchRow{}, nil
	}
	return f.searchFn(ctx, worldID, query, limit)
}

// testEnv bundles a service over fakes with the recorder observing its view
// invalidations and an authenticated context.
type testEnv struct {
	svc       *Service
	worlds    *fakeWorldRepo
	locations *fakeLocationRepo
	npcs      *fakeNPCRepo
	items     *fakeItemRepo
	gods      *fakeGodRepo
	views     *view.Recorder
	principal *auth.Principal
	ctx       context.Context
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		worlds:    &fakeWorldRepo{},
		locations: &fakeLocationRepo{},
		npcs:      &fakeNPCRepo{},
		items:     &fakeItemRepo{},
		gods:      &fakeGodRepo{},
		views:     &view.Recorder{},
		principal: &auth.Principal{ID: ulid.Make(), Username: "tess", Email: "tess@example.com"},
	}
	env.svc = NewService(ServiceConfig{
		Worlds:    env.worlds,
		Locations: env.locations,
		NPCs:      env.npcs,
		Items:     env.items,
		Gods:      env.gods,
		Identity:  auth.ContextIdentity{},
		Views:     env.views,
	})
	env.ctx = auth.WithPrincipal(context.Background(), env.principal)
	return env
}
