// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

// Package session keeps per-session UI state that outlives a single request
// but does not belong in the database: the selected world, sidebar
// visibility, and the global search box.
package session

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// State is the UI state carried by one browser session.
type State struct {
	SelectedWorldID *ulid.ULID `json:"selected_world_id"`
	SidebarOpen     bool       `json:"sidebar_open"`
	GlobalSearch    string     `json:"global_search"`
}

// Store holds session state in memory, keyed by session id. State is
// best-effort: a restart loses it and the UI falls back to defaults.
type Store struct {
	mu     sync.RWMutex
	states map[ulid.ULID]State
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{states: make(map[ulid.ULID]State)}
}

// Get returns the state for a session, or the default state if none is held.
func (s *Store) Get(sessionID ulid.ULID) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.states[sessionID]; ok {
		return st
	}
	return State{SidebarOpen: true}
}

// Put replaces the state for a session.
func (s *Store) Put(sessionID ulid.ULID, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = st
}

// Mutate applies fn to the session's state under the lock.
func (s *Store) Mutate(sessionID ulid.ULID, fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sessionID]
	if !ok {
		st = State{SidebarOpen: true}
	}
	fn(&st)
	s.states[sessionID] = st
	return st
}

// Drop removes the state for a session, typically on sign-out.
func (s *Store) Drop(sessionID ulid.ULID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}
