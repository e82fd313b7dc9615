// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import (
	"encoding/binary"
	"net/netip"

	"github.com/bitvantage/netaddressing/internal/uint128"
)

// The mask tables are the only source of mask bits; hot paths never
// recompute a mask. Index by Family.index() and prefix length.
// Variable initializers, not init(), so package-level consumers of
// ParseNetwork are ordered after the tables.
var networkMasks, hostMasks, prefixByMask = buildMaskTables()

func buildMaskTables() (
	network [2][129]uint128.Uint128,
	host [2][129]uint128.Uint128,
	byMask [2]map[uint128.Uint128]int,
) {
	for _, f := range []Family{IPv4, IPv6} {
		length := f.AddressLength()
		byMask[f.index()] = make(map[uint128.Uint128]int, length+1)

		for p := 0; p <= length; p++ {
			host[f.index()][p] = uint128.Ones(length - p)
			network[f.index()][p] = uint128.Ones(length).AndNot(host[f.index()][p])
			byMask[f.index()][network[f.index()][p]] = p
		}
	}
	return network, host, byMask
}

// toUint128 serializes an address into the low-aligned 128-bit form:
// the most significant address bit is bit AddressLength-1.
func toUint128(addr netip.Addr) uint128.Uint128 {
	if addr.Is4() {
		b := addr.As4()
		return uint128.From64(uint64(binary.BigEndian.Uint32(b[:])))
	}

	b := addr.As16()
	return uint128.Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// addrFromUint128 is the inverse of toUint128.
func addrFromUint128(u uint128.Uint128, f Family) netip.Addr {
	if f == IPv4 {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(u.Lo))
		return netip.AddrFrom4(b)
	}

	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return netip.AddrFrom16(b)
}
