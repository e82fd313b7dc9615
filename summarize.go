// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bitvantage/netaddressing/internal/uint128"
)

// Summarize coalesces complementary sibling pairs into their common
// supernet, iterating from the most specific prefix length to the
// least, until no pair remains. Exact duplicates collapse to one
// entry; a network contained in another is kept as supplied. The
// result is sorted.
func Summarize(networks []Network) []Network {
	set := make(map[Network]struct{}, len(networks))
	for _, n := range networks {
		mustBeValid(n)
		set[n] = struct{}{}
	}

	for prefix := 128; prefix > 0; prefix-- {
		var level []Network
		for n := range set {
			if n.Prefix() == prefix {
				level = append(level, n)
			}
		}
		slices.SortFunc(level, Network.Compare)

		for _, n := range level {
			if _, ok := set[n]; !ok {
				// merged away by its own complement earlier this level
				continue
			}

			complement, _ := n.ComplementaryNetwork()
			if _, ok := set[complement]; !ok {
				continue
			}

			delete(set, n)
			delete(set, complement)

			parent, _ := NewNetwork(n.Address(), prefix-1)
			set[parent] = struct{}{}
		}
	}

	merged := make([]Network, 0, len(set))
	for n := range set {
		merged = append(merged, n)
	}
	slices.SortFunc(merged, Network.Compare)

	return merged
}

// Split yields the networks of the given prefix length covering n, in
// ascending order. It fails with ErrSplitTooFine when the prefix
// exceeds the address length and with ErrInvalidPrefix when it is
// coarser than n itself.
func (n Network) Split(prefix int) (iter.Seq[Network], error) {
	mustBeValid(n)

	if prefix > n.addressLength() {
		return nil, fmt.Errorf("%w: /%d for %s", ErrSplitTooFine, prefix, n.family)
	}
	if prefix < n.Prefix() {
		return nil, fmt.Errorf("%w: splitting %s into /%d", ErrInvalidPrefix, n, prefix)
	}

	step := uint128.From64(1).Lsh(n.addressLength() - prefix)

	return func(yield func(Network) bool) {
		cur := n.bits
		for {
			sub := Network{bits: cur, prefix: uint8(prefix), family: n.family}
			if !yield(sub) {
				return
			}

			next, carry := cur.Add(step)
			if step.IsZero() || carry != 0 || next.BitLen() > n.addressLength() || !n.covers(next) {
				return
			}
			cur = next
		}
	}, nil
}

// Subtract removes the strictly contained network other from n and
// returns the networks covering the remainder, in ascending order. It
// fails with ErrNotFound when other is not strictly contained in n.
func (n Network) Subtract(other Network) ([]Network, error) {
	mustBeValid(n)
	mustBeValid(other)

	if !n.Contains(other) {
		return nil, fmt.Errorf("%w: %s is not strictly contained in %s", ErrNotFound, other, n)
	}

	var remainder []Network

	// halve toward other, keeping the half that does not contain it
	cur := n
	for cur.Prefix() < other.Prefix() {
		half := Network{bits: cur.bits, prefix: cur.prefix + 1, family: cur.family}
		if !half.ContainsOrEqual(other) {
			half, _ = half.ComplementaryNetwork()
		}

		keep, _ := half.ComplementaryNetwork()
		remainder = append(remainder, keep)
		cur = half
	}

	slices.SortFunc(remainder, Network.Compare)
	return remainder, nil
}
