// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import "encoding/json"

// MarshalText implements [encoding.TextMarshaler]; the form is
// address/prefix.
func (n Network) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return []byte{}, nil
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]; it accepts the
// forms of [ParseNetwork].
func (n *Network) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*n = Network{}
		return nil
	}

	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ListElement represents a network, its value and its subnets in a
// sorted recursive form, especially useful for serialization.
type ListElement[V any] struct {
	Network Network          `json:"network"`
	Value   V                `json:"value"`
	Subnets []ListElement[V] `json:"subnets,omitempty"`
}

// DumpList dumps the tree of one family into a nested list of value
// nodes; routing nodes are transparent.
func (t *Tree[V]) DumpList(f Family) []ListElement[V] {
	if !f.isValid() {
		panic("netaddressing: dumping with invalid family")
	}

	root := t.root(f)
	if val := root.payload.Load(); val != nil {
		return []ListElement[V]{{
			Network: root.network,
			Value:   *val,
			Subnets: dumpKids(root),
		}}
	}
	return dumpKids(root)
}

// dumpKids collects the nearest value-node descendants of nd.
func dumpKids[V any](nd *node[V]) []ListElement[V] {
	var elements []ListElement[V]

	for slot := range nd.children {
		child := nd.child(slot)
		if child == nil {
			continue
		}

		if val := child.payload.Load(); val != nil {
			elements = append(elements, ListElement[V]{
				Network: child.network,
				Value:   *val,
				Subnets: dumpKids(child),
			})
		} else {
			elements = append(elements, dumpKids(child)...)
		}
	}

	return elements
}

// MarshalJSON dumps the tree into two nested lists, one per family.
// Arrays, not maps, because the order matters.
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	result := struct {
		IPv4 []ListElement[V] `json:"ipv4,omitempty"`
		IPv6 []ListElement[V] `json:"ipv6,omitempty"`
	}{
		IPv4: t.DumpList(IPv4),
		IPv6: t.DumpList(IPv6),
	}

	return json.Marshal(result)
}
