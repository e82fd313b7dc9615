// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// ParseNetwork parses a network in one of three forms, for either
// family:
//
//	10.1.0.0/16
//	10.1.0.0 255.255.0.0
//	10.1.0.1           (host route, /32 or /128)
//
// An address literal that fails numeric parsing is retried as a
// hostname; the name maps to its first resolved address.
func ParseNetwork(s string) (Network, error) {
	s = strings.TrimSpace(s)

	if addrPart, prefixPart, found := strings.Cut(s, "/"); found {
		prefix, err := strconv.Atoi(prefixPart)
		if err != nil {
			return Network{}, fmt.Errorf("%w: prefix %q", ErrInvalidPrefix, prefixPart)
		}

		addr, err := parseAddr(addrPart)
		if err != nil {
			return Network{}, err
		}
		return NewNetwork(addr, prefix)
	}

	if fields := strings.Fields(s); len(fields) == 2 {
		addr, err := parseAddr(fields[0])
		if err != nil {
			return Network{}, err
		}

		mask, err := netip.ParseAddr(fields[1])
		if err != nil {
			return Network{}, fmt.Errorf("%w: %q", ErrInvalidMask, fields[1])
		}
		return NewNetworkFromMask(addr, mask)
	}

	addr, err := parseAddr(s)
	if err != nil {
		return Network{}, err
	}
	return NewHostNetwork(addr)
}

// MustParseNetwork is ParseNetwork for statically known input; it
// panics on error.
func MustParseNetwork(s string) Network {
	n, err := ParseNetwork(s)
	if err != nil {
		panic(err)
	}
	return n
}

// parseAddr parses an address literal, falling back to hostname
// resolution.
func parseAddr(s string) (netip.Addr, error) {
	s = strings.TrimSpace(s)

	if addr, err := netip.ParseAddr(s); err == nil {
		return addr, nil
	}

	resolved, err := net.LookupHost(s)
	if err != nil || len(resolved) == 0 {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
	}

	addr, err := netip.ParseAddr(resolved[0])
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q resolved to %q", ErrMalformedAddress, s, resolved[0])
	}
	return addr, nil
}
