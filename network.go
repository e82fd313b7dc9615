// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import (
	"fmt"
	"math/big"
	"net/netip"

	"github.com/bitvantage/netaddressing/internal/uint128"
)

// Network is a canonical (address, prefix) pair of either family.
// Host bits are truncated on construction, so two Networks are equal
// iff their family, network address and prefix length are equal.
// The zero value is invalid.
type Network struct {
	bits   uint128.Uint128
	prefix uint8
	family Family
}

// NewNetwork returns the network of addr with the given prefix length.
// The address is truncated to its network portion; IPv4-mapped IPv6
// addresses are treated as IPv4.
func NewNetwork(addr netip.Addr, prefix int) (Network, error) {
	family, err := familyOf(addr)
	if err != nil {
		return Network{}, err
	}

	length := family.AddressLength()
	if prefix < 0 || prefix > length {
		return Network{}, fmt.Errorf("%w: /%d for %s", ErrInvalidPrefix, prefix, family)
	}

	return Network{
		bits:   toUint128(addr.Unmap()).And(networkMasks[family.index()][prefix]),
		prefix: uint8(prefix),
		family: family,
	}, nil
}

// NewHostNetwork returns the host route of addr, /32 or /128.
func NewHostNetwork(addr netip.Addr) (Network, error) {
	family, err := familyOf(addr)
	if err != nil {
		return Network{}, err
	}
	return NewNetwork(addr, family.AddressLength())
}

// NewNetworkFromMask returns the network of addr under a dotted mask,
// e.g. (10.1.2.3, 255.255.255.0). The mask must be a contiguous
// prefix of the same family as addr.
func NewNetworkFromMask(addr, mask netip.Addr) (Network, error) {
	family, err := familyOf(addr)
	if err != nil {
		return Network{}, err
	}

	maskFamily, err := familyOf(mask)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %s", ErrInvalidMask, mask)
	}
	if maskFamily != family {
		return Network{}, fmt.Errorf("%w: %s mask on %s address", ErrInvalidMask, maskFamily, family)
	}

	prefix, ok := prefixByMask[family.index()][toUint128(mask.Unmap())]
	if !ok {
		return Network{}, fmt.Errorf("%w: %s", ErrInvalidMask, mask)
	}

	return NewNetwork(addr, prefix)
}

func familyOf(addr netip.Addr) (Family, error) {
	if !addr.IsValid() {
		return 0, fmt.Errorf("%w: zero address", ErrMalformedAddress)
	}
	if addr.Unmap().Is4() {
		return IPv4, nil
	}
	return IPv6, nil
}

// IsValid reports whether n was produced by a constructor; the zero
// Network is not valid.
func (n Network) IsValid() bool { return n.family.isValid() }

// Family returns the address family tag.
func (n Network) Family() Family { return n.family }

// Prefix returns the prefix length.
func (n Network) Prefix() int { return int(n.prefix) }

// Address returns the network address.
func (n Network) Address() netip.Addr { return addrFromUint128(n.bits, n.family) }

// Mask returns the network mask as an address, e.g. 255.255.255.0.
func (n Network) Mask() netip.Addr {
	return addrFromUint128(n.networkMask(), n.family)
}

// Wildcard returns the inverted mask, e.g. 0.0.0.255.
func (n Network) Wildcard() netip.Addr {
	return addrFromUint128(n.hostMask(), n.family)
}

// Broadcast returns the highest address of the network.
func (n Network) Broadcast() netip.Addr {
	return addrFromUint128(n.bits.Or(n.hostMask()), n.family)
}

// TotalAddresses returns 2^(address length - prefix).
func (n Network) TotalAddresses() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n.addressLength()-n.Prefix()))
}

// TotalHosts returns the number of assignable host addresses: the
// address count minus network and broadcast address, except for
// point-to-point (/31, /127) and host networks, and for the default
// route where no reservation is meaningful.
func (n Network) TotalHosts() *big.Int {
	length := n.addressLength()
	switch {
	case n.Prefix() == 0:
		return n.TotalAddresses()
	case n.Prefix() >= length-1:
		return big.NewInt(int64(length - n.Prefix() + 1)) // 2 for /31, 1 for /32
	default:
		return new(big.Int).Sub(n.TotalAddresses(), big.NewInt(2))
	}
}

// FirstHost returns the lowest assignable host address. It fails with
// ErrNoHosts for the default route.
func (n Network) FirstHost() (netip.Addr, error) {
	length := n.addressLength()
	switch {
	case n.Prefix() == 0:
		return netip.Addr{}, ErrNoHosts
	case n.Prefix() >= length-1:
		return n.Address(), nil
	default:
		first, _ := n.bits.Add(uint128.From64(1))
		return addrFromUint128(first, n.family), nil
	}
}

// LastHost returns the address below the broadcast address. For
// point-to-point (/31, /127) and host networks it returns the network
// address, like FirstHost. It fails with ErrNoHosts for the default
// route.
func (n Network) LastHost() (netip.Addr, error) {
	length := n.addressLength()
	switch {
	case n.Prefix() == 0:
		return netip.Addr{}, ErrNoHosts
	case n.Prefix() >= length-1:
		return n.Address(), nil
	default:
		last, _ := n.bits.Or(n.hostMask()).Sub(uint128.From64(1))
		return addrFromUint128(last, n.family), nil
	}
}

// Contains reports whether other is a strict subnet of n.
func (n Network) Contains(other Network) bool {
	return n.family == other.family &&
		n.prefix < other.prefix &&
		other.bits.And(n.networkMask()) == n.bits
}

// ContainsOrEqual reports whether other is a subnet of n or n itself.
func (n Network) ContainsOrEqual(other Network) bool {
	return n.family == other.family &&
		n.prefix <= other.prefix &&
		other.bits.And(n.networkMask()) == n.bits
}

// ContainsAddress reports whether addr lies inside n.
func (n Network) ContainsAddress(addr netip.Addr) bool {
	host, err := NewHostNetwork(addr)
	if err != nil {
		return false
	}
	return n.ContainsOrEqual(host)
}

// Overlaps reports whether n and other share any address.
func (n Network) Overlaps(other Network) bool {
	return n.ContainsOrEqual(other) || other.ContainsOrEqual(n)
}

// Compare orders networks: invalid first, IPv4 before IPv6, then by
// network address, then shorter prefix first.
func (n Network) Compare(other Network) int {
	if n.family != other.family {
		if n.family < other.family {
			return -1
		}
		return 1
	}
	if c := n.bits.Cmp(other.bits); c != 0 {
		return c
	}
	switch {
	case n.prefix < other.prefix:
		return -1
	case n.prefix > other.prefix:
		return 1
	}
	return 0
}

// ComplementaryNetwork returns the sibling network sharing all but the
// final bit of the network portion. It fails with ErrNoComplement for
// the default route.
func (n Network) ComplementaryNetwork() (Network, error) {
	if n.Prefix() == 0 {
		return Network{}, ErrNoComplement
	}

	flipped := n
	flipped.bits = n.bits.Xor(uint128.From64(1).Lsh(n.addressLength() - n.Prefix()))
	return flipped, nil
}

// SmallestCommonNetwork returns the unique smallest network containing
// both a and b. The operands must share a family.
func SmallestCommonNetwork(a, b Network) (Network, error) {
	if !a.IsValid() || !b.IsValid() {
		return Network{}, fmt.Errorf("%w: invalid network", ErrMalformedAddress)
	}
	if a.family != b.family {
		return Network{}, fmt.Errorf("%w: %s and %s", ErrUnsupportedFamily, a.family, b.family)
	}
	return smallestCommon(a, b), nil
}

// smallestCommon assumes valid same-family operands.
func smallestCommon(a, b Network) Network {
	prefix := min(a.Prefix(), b.Prefix())

	if x := a.bits.Xor(b.bits); !x.IsZero() {
		// the common prefix ends at the highest diverging bit
		prefix = min(prefix, a.addressLength()-x.BitLen())
	}

	return Network{
		bits:   a.bits.And(networkMasks[a.family.index()][prefix]),
		prefix: uint8(prefix),
		family: a.family,
	}
}

// Add advances the network by count blocks of its own size, so
// 10.0.1.0/24 + 1 = 10.0.2.0/24. It fails with ErrOverflow when the
// result leaves the address family.
func (n Network) Add(count int64) (Network, error) {
	if count < 0 {
		return n.Sub(-count)
	}

	shift := n.addressLength() - n.Prefix()
	delta := uint128.From64(uint64(count)).Lsh(shift)
	if delta.Rsh(shift) != uint128.From64(uint64(count)) {
		return Network{}, ErrOverflow
	}

	sum, carry := n.bits.Add(delta)
	if carry != 0 || sum.BitLen() > n.addressLength() {
		return Network{}, ErrOverflow
	}

	out := n
	out.bits = sum
	return out, nil
}

// Sub is the inverse of Add.
func (n Network) Sub(count int64) (Network, error) {
	if count < 0 {
		return n.Add(-count)
	}

	shift := n.addressLength() - n.Prefix()
	delta := uint128.From64(uint64(count)).Lsh(shift)
	if delta.Rsh(shift) != uint128.From64(uint64(count)) {
		return Network{}, ErrOverflow
	}

	diff, borrow := n.bits.Sub(delta)
	if borrow != 0 {
		return Network{}, ErrOverflow
	}

	out := n
	out.bits = diff
	return out, nil
}

// String returns the network in address/prefix form.
func (n Network) String() string {
	if !n.IsValid() {
		return "invalid network"
	}
	return fmt.Sprintf("%s/%d", n.Address(), n.Prefix())
}

func (n Network) addressLength() int { return n.family.AddressLength() }

func (n Network) networkMask() uint128.Uint128 {
	return networkMasks[n.family.index()][n.prefix]
}

func (n Network) hostMask() uint128.Uint128 {
	return hostMasks[n.family.index()][n.prefix]
}

// covers reports whether the raw address bits lie inside n.
func (n Network) covers(bits uint128.Uint128) bool {
	return bits.And(n.networkMask()) == n.bits
}
