// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

// Package netaddressing provides network address values and a
// variable-stride binary trie for longest-prefix matching over IPv4
// and IPv6 networks.
//
// The two building blocks are:
//
//   - Network: a canonical (address, prefix) value with containment,
//     ordering, set algebra and block arithmetic
//   - Tree: a longest-prefix-match trie with payload V, one instance
//     holding both address families
//
// The Tree is a lock-free single-writer/multiple-reader structure:
// any number of goroutines may match and render concurrently with at
// most one mutating goroutine. SyncTree wraps a Tree with a writer
// mutex for callers with more than one mutator.
//
// The tree shape is content-invariant: it depends only on the set of
// inserted networks, never on their insertion order.
package netaddressing
