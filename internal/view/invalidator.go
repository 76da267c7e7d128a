// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

// Package view propagates path invalidation signals from mutations to
// whatever caches rendered those paths.
package view

import "sync"

// Invalidator receives the paths whose rendered state a mutation made stale.
type Invalidator interface {
	// Invalidate marks each path as stale. Implementations must not
	// block the caller.
	Invalidate(paths ...string)
}

// Subscriber is notified of each invalidated path.
type Subscriber func(path string)

// Broker fans invalidation signals out to registered subscribers.
// The zero value is not usable; call NewBroker.
type Broker struct {
	mu   sync.RWMutex
	subs []Subscriber
}

// NewBroker creates an empty Broker.
func NewBroker() *Broker {
	return &Broker{}
}

// Subscribe registers a subscriber for future invalidations.
func (b *Broker) Subscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, sub)
}

// Invalidate implements Invalidator.
func (b *Broker) Invalidate(paths ...string) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	for _, path := range paths {
		for _, sub := range subs {
			sub(path)
		}
	}
}

// Recorder is an Invalidator that remembers every path it was given.
// Intended for tests.
type Recorder struct {
	mu    sync.Mutex
	paths []string
}

// Invalidate implements Invalidator.
func (r *Recorder) Invalidate(paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, paths...)
}

// Paths returns a copy of the recorded paths in invalidation order.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Reset clears the recorded paths.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = nil
}
