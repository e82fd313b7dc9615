// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import (
	"fmt"
	"net/netip"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncTreeSerializesWriters(t *testing.T) {
	tree := new(SyncTree[int])

	writers := 8
	perWriter := 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				// distinct /32 per (writer, i)
				addr := netip.AddrFrom4([4]byte{10, byte(w), byte(i >> 8), byte(i)})
				n, err := NewHostNetwork(addr)
				if err != nil {
					t.Error(err)
					return
				}
				if !tree.TryAdd(n, w) {
					t.Errorf("lost insert of %s", n)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, tree.Count())
}

func TestSyncTreeConcurrentReadersAndWriters(t *testing.T) {
	tree := new(SyncTree[string])
	require.NoError(t, tree.Add(MustParseNetwork("10.0.0.0/8"), "stable"))

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				n := MustParseNetwork(fmt.Sprintf("10.%d.%d.0/24", w, i%256))
				tree.TryAdd(n, "churn")
				tree.TryRemove(n)
			}
		}(w)
	}

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			probe := netip.MustParseAddr("10.255.0.1")
			for i := 0; i < 1_000; i++ {
				e, ok := tree.TryGetMatch(probe)
				if !ok || e.Value != "stable" {
					t.Errorf("reader lost the /8: ok=%v entry=%v", ok, e)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, tree.Count())
}

func TestSyncTreeDelegates(t *testing.T) {
	tree := new(SyncTree[string])
	n := MustParseNetwork("192.168.0.0/16")

	require.NoError(t, tree.Add(n, "lan"))
	assert.ErrorIs(t, tree.Add(n, "again"), ErrDuplicate)

	e, added := tree.GetOrAdd(n, func() string { return "unused" })
	assert.False(t, added)
	assert.Equal(t, "lan", e.Value)

	matches, err := tree.GetMatches(netip.MustParseAddr("192.168.1.1"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, n, matches[0].Network)

	assert.Contains(t, tree.ToTextTree(IPv4), "192.168.0.0/16 [1]")

	require.NoError(t, tree.Remove(n))
	tree.Clear()
	assert.Equal(t, 0, tree.Count())
}
