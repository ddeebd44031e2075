// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

// Package rc implements the intrusive, atomically-updated reference count
// every hashdict node embeds, plus the copy-on-write helper that is the
// sole mechanism by which persistent variants of a hashdict node diverge
// from shared structure. The sorteddict and vector nodes carry no counter:
// those engines always path-copy and never mutate a node in place.
//
// None of the trees built on top of this package form cycles, so a plain
// count (rather than a tracing or generational collector) is sufficient:
// when the count reaches zero the node's children are released in turn.
package rc

import "sync/atomic"

// Counter is an intrusive atomic reference count. The zero value is not
// usable; construct one with New so newly-allocated nodes start owned by
// their one creator.
type Counter struct {
	n int32
}

// New returns a Counter with an initial count of 1, for a node that has
// just been allocated and is held by exactly one owner.
func New() *Counter {
	return &Counter{n: 1}
}

// Retain increments the count. Called whenever a second root starts
// referencing an existing node (structural sharing).
func (c *Counter) Retain() {
	if c == nil {
		return
	}
	atomic.AddInt32(&c.n, 1)
}

// Release decrements the count and reports whether it reached zero. The
// caller is responsible for recursively releasing children only when this
// returns true.
func (c *Counter) Release() bool {
	if c == nil {
		return false
	}
	return atomic.AddInt32(&c.n, -1) == 0
}

// Shared reports whether more than one owner references the node, which is
// exactly the condition under which a write must clone rather than mutate
// in place.
func (c *Counter) Shared() bool {
	if c == nil {
		return false
	}
	return atomic.LoadInt32(&c.n) > 1
}

// Node is implemented by hashdict's node type: Refs exposes the
// embedded Counter, and Clone produces an independent copy with fresh
// ownership of the same children (each child retained once).
type Node[N any] interface {
	Refs() *Counter
	Clone() N
}

// PrepareForWrite is the copy-on-write helper every mutation path calls
// before touching a node: if n is exclusively owned (refcount == 1, or n
// is the zero value with no counter at all) it is returned unchanged,
// since the caller already has
// exclusive access to mutate it directly. Otherwise a fresh clone is
// allocated, retaining each child once, and that clone is returned for the
// caller to mutate instead. This is the only place a persistent operation
// is allowed to diverge from shared structure.
func PrepareForWrite[N Node[N]](n N) N {
	if n.Refs().Shared() {
		return n.Clone()
	}
	return n
}
