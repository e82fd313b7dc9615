// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import "errors"

var (
	// ErrDuplicate is returned by Tree.Add when the exact network is
	// already present.
	ErrDuplicate = errors.New("network already exists")

	// ErrNotFound is returned by Tree.Remove for a network that was
	// never added, by the match operations when no network covers the
	// query, and by Network.Subtract for a non-contained argument.
	ErrNotFound = errors.New("network not found")

	// ErrInvalidMask means a dotted mask is not a contiguous prefix.
	ErrInvalidMask = errors.New("invalid network mask")

	// ErrInvalidPrefix means a prefix length is outside [0, address length].
	ErrInvalidPrefix = errors.New("invalid prefix length")

	// ErrMalformedAddress means an address literal could not be parsed
	// and did not resolve as a hostname.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrUnsupportedFamily means an operation mixed IPv4 and IPv6
	// operands or received an address of neither family.
	ErrUnsupportedFamily = errors.New("unsupported address family")

	// ErrOverflow means block arithmetic stepped outside the address
	// family.
	ErrOverflow = errors.New("network arithmetic overflow")

	// ErrNoComplement means the default route has no complementary
	// network.
	ErrNoComplement = errors.New("network has no complement")

	// ErrNoHosts means the default route has no first or last host.
	ErrNoHosts = errors.New("network has no host addresses")

	// ErrSplitTooFine means a split prefix exceeds the address length.
	ErrSplitTooFine = errors.New("split prefix exceeds address length")
)
