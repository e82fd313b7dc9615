// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package netaddressing

import (
	"fmt"
	"io"
	"strings"
)

// textNode carries one pending line of the tree rendering: the node,
// the accumulated ancestor glyph columns, the slot it occupies under
// its parent and whether it is the parent's last child.
type textNode[V any] struct {
	nd   *node[V]
	pad  string
	slot int // -1 for the root
	last bool
}

// ToTextTree renders the tree of one address family as a hierarchical
// text diagram, one line per node:
//
//	@0.0.0.0/0
//	└──@128.0.0.0/1 [1]
//	   ├──128.0.0.0/5 [0]
//	   │  └──131.126.152.0/21 [0]
//	   └──241.104.240.0/21 [1]
//
// Routing nodes carry a leading @, every non-root line names the child
// slot it occupies under its parent. The rendering is deterministic:
// it depends only on the tree contents.
func (t *Tree[V]) ToTextTree(f Family) string {
	return t.ToTextTreeFunc(f, nil)
}

// ToTextTreeFunc is ToTextTree with a caller-supplied payload
// formatter. The formatter is invoked for value nodes only; a
// non-empty result is appended to the node's line.
func (t *Tree[V]) ToTextTreeFunc(f Family, format func(Entry[V]) string) string {
	if !f.isValid() {
		panic("netaddressing: rendering with invalid family")
	}

	var sb strings.Builder

	// depth-first, right child pushed first so left children are
	// emitted first
	stack := []textNode[V]{{nd: t.root(f), slot: -1, last: true}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.slot >= 0 {
			sb.WriteString(it.pad)
			if it.last {
				sb.WriteString("└──")
			} else {
				sb.WriteString("├──")
			}
		}

		val := it.nd.payload.Load()
		if val == nil {
			sb.WriteString("@")
		}
		sb.WriteString(it.nd.network.String())
		if it.slot >= 0 {
			fmt.Fprintf(&sb, " [%d]", it.slot)
		}
		if format != nil && val != nil {
			if txt := format(it.nd.entry(val)); txt != "" {
				sb.WriteString(" ")
				sb.WriteString(txt)
			}
		}
		sb.WriteString("\n")

		childPad := it.pad
		if it.slot >= 0 {
			if it.last {
				childPad += "   "
			} else {
				childPad += "│  "
			}
		}

		c0, c1 := it.nd.child(0), it.nd.child(1)
		if c1 != nil {
			stack = append(stack, textNode[V]{nd: c1, pad: childPad, slot: 1, last: true})
		}
		if c0 != nil {
			stack = append(stack, textNode[V]{nd: c0, pad: childPad, slot: 0, last: c1 == nil})
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// Fprint writes the text diagrams of both families to w, IPv4 first.
func (t *Tree[V]) Fprint(w io.Writer) error {
	if w == nil {
		panic("netaddressing: nil writer")
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", t.ToTextTree(IPv4), t.ToTextTree(IPv6))
	return err
}

// String returns the text diagrams of both families, just a wrapper
// for [Tree.Fprint].
func (t *Tree[V]) String() string {
	sb := new(strings.Builder)
	if err := t.Fprint(sb); err != nil {
		panic(err)
	}
	return sb.String()
}
