// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import (
	"net/netip"
	"sync"
)

// SyncTree wraps a Tree for callers with more than one mutating
// goroutine. Writers are serialized under a mutex held for the whole
// operation; readers delegate to the underlying Tree and never take a
// lock.
type SyncTree[V any] struct {
	tree Tree[V]

	// serializes writers, readers are lock-free
	mu sync.Mutex
}

// Add is a writer-serialized adapter for [Tree.Add].
func (t *SyncTree[V]) Add(n Network, val V) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Add(n, val)
}

// TryAdd is a writer-serialized adapter for [Tree.TryAdd].
func (t *SyncTree[V]) TryAdd(n Network, val V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.TryAdd(n, val)
}

// GetOrAdd is a writer-serialized adapter for [Tree.GetOrAdd].
func (t *SyncTree[V]) GetOrAdd(n Network, factory func() V) (Entry[V], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.GetOrAdd(n, factory)
}

// Remove is a writer-serialized adapter for [Tree.Remove].
func (t *SyncTree[V]) Remove(n Network) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Remove(n)
}

// TryRemove is a writer-serialized adapter for [Tree.TryRemove].
func (t *SyncTree[V]) TryRemove(n Network) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.TryRemove(n)
}

// Clear is a writer-serialized adapter for [Tree.Clear].
func (t *SyncTree[V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Clear()
}

// GetMatch delegates lock-free to [Tree.GetMatch].
func (t *SyncTree[V]) GetMatch(addr netip.Addr) (Entry[V], error) {
	return t.tree.GetMatch(addr)
}

// TryGetMatch delegates lock-free to [Tree.TryGetMatch].
func (t *SyncTree[V]) TryGetMatch(addr netip.Addr) (Entry[V], bool) {
	return t.tree.TryGetMatch(addr)
}

// GetMatchNetwork delegates lock-free to [Tree.GetMatchNetwork].
func (t *SyncTree[V]) GetMatchNetwork(n Network) (Entry[V], error) {
	return t.tree.GetMatchNetwork(n)
}

// TryGetMatchNetwork delegates lock-free to [Tree.TryGetMatchNetwork].
func (t *SyncTree[V]) TryGetMatchNetwork(n Network) (Entry[V], bool) {
	return t.tree.TryGetMatchNetwork(n)
}

// GetMatches delegates lock-free to [Tree.GetMatches].
func (t *SyncTree[V]) GetMatches(addr netip.Addr) ([]Entry[V], error) {
	return t.tree.GetMatches(addr)
}

// TryGetMatches delegates lock-free to [Tree.TryGetMatches].
func (t *SyncTree[V]) TryGetMatches(addr netip.Addr) ([]Entry[V], bool) {
	return t.tree.TryGetMatches(addr)
}

// GetMatchesNetwork delegates lock-free to [Tree.GetMatchesNetwork].
func (t *SyncTree[V]) GetMatchesNetwork(n Network) ([]Entry[V], error) {
	return t.tree.GetMatchesNetwork(n)
}

// TryGetMatchesNetwork delegates lock-free to [Tree.TryGetMatchesNetwork].
func (t *SyncTree[V]) TryGetMatchesNetwork(n Network) ([]Entry[V], bool) {
	return t.tree.TryGetMatchesNetwork(n)
}

// Count delegates lock-free to [Tree.Count].
func (t *SyncTree[V]) Count() int {
	return t.tree.Count()
}

// ToTextTree delegates lock-free to [Tree.ToTextTree].
func (t *SyncTree[V]) ToTextTree(f Family) string {
	return t.tree.ToTextTree(f)
}

// ToTextTreeFunc delegates lock-free to [Tree.ToTextTreeFunc].
func (t *SyncTree[V]) ToTextTreeFunc(f Family, format func(Entry[V]) string) string {
	return t.tree.ToTextTreeFunc(f, format)
}
