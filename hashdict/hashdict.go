// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

// Package hashdict implements HashDict, a persistent hash array mapped
// trie (HAMT): a structurally-shared key/value collection with
// O(log32 n) lookup, insertion and deletion, generalized from a fixed
// []byte/[]byte HAMT to any key/value type via a host-supplied Hasher.
package hashdict

import (
	"reflect"

	"github.com/kamino-go/persist"
)

// Dict is a persistent hash array mapped trie. The zero value is not a
// usable empty Dict; construct one with NewHashDict. Every method returns a
// new Dict (or the receiver unchanged when nothing would change) rather than
// mutating the receiver, so a Dict handle is always safe to share across
// goroutines without synchronization.
type Dict[K any, V any] struct {
	root   *node[K, V]
	count  int
	hasher persist.Hasher[K]
}

// NewHashDict returns an empty Dict using hasher for key hashing and
// equality. Panics with persist.MalformedInputError if hasher is nil,
// rather than deferring to an opaque nil-interface panic on first Assoc.
func NewHashDict[K any, V any](hasher persist.Hasher[K]) Dict[K, V] {
	if hasher == nil {
		panic(persist.MalformedInputError{Reason: "hashdict: nil Hasher"})
	}
	return Dict[K, V]{hasher: hasher}
}

// FromSequence builds a Dict from a host-neutral sequence of pairs, in
// order, last-key-wins on duplicates (the same semantics repeated Assoc
// calls would produce).
func FromSequence[K any, V any](hasher persist.Hasher[K], pairs []persist.Pair[K, V]) Dict[K, V] {
	d := NewHashDict[K, V](hasher)
	for _, p := range pairs {
		d = d.Assoc(p.Key, p.Value)
	}
	return d
}

// Len returns the number of entries.
func (d Dict[K, V]) Len() int { return d.count }

// Hasher returns the Hasher this Dict was constructed with, so a caller
// building another empty Dict over the same key type (for example a set
// façade computing an intersection) doesn't need to carry its own copy.
func (d Dict[K, V]) Hasher() persist.Hasher[K] { return d.hasher }

// Get returns the value associated with key and whether it was present.
func (d Dict[K, V]) Get(key K) (V, bool) {
	return find(d.root, key, newHashState(d.hasher.Hash(key)), d.hasher.Equal)
}

// Contains reports whether key is present.
func (d Dict[K, V]) Contains(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// MustGet returns the value associated with key, panicking with a
// persist.KeyNotFoundError if it is absent.
func (d Dict[K, V]) MustGet(key K) V {
	v, ok := d.Get(key)
	if !ok {
		panic(persist.KeyNotFoundError{Key: key})
	}
	return v
}

// valueEqual falls back to reflect.DeepEqual, since V carries no comparable
// constraint: a Dict may hold any value type, including structs and slices.
func valueEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}

// Assoc returns a Dict with key bound to value, leaving the receiver
// unchanged. If key is already bound to an equal value, the receiver is
// returned as-is (no new Dict is allocated).
func (d Dict[K, V]) Assoc(key K, value V) Dict[K, V] {
	newRoot, added, changed := insert(d.root, key, value, newHashState(d.hasher.Hash(key)), d.hasher, valueEqual[V])
	if !changed {
		return d
	}
	count := d.count
	if added {
		count++
	}
	return Dict[K, V]{root: newRoot, count: count, hasher: d.hasher}
}

// Dissoc returns a Dict with key removed, leaving the receiver unchanged. If
// key was not present, the receiver is returned as-is.
func (d Dict[K, V]) Dissoc(key K) Dict[K, V] {
	newRoot, deleted, hoisted := dissoc(d.root, key, newHashState(d.hasher.Hash(key)), d.hasher.Equal)
	if !deleted {
		return d
	}
	if hoisted != nil {
		leaf := newBitmapNode[K, V]()
		leaf.bitmap = 1 << fragment(d.hasher.Hash(hoisted.key), 0)
		leaf.slots = []slot[K, V]{*hoisted}
		newRoot = leaf
	}
	return Dict[K, V]{root: newRoot, count: d.count - 1, hasher: d.hasher}
}

// Merge returns a new Dict containing every entry of d and other; where both
// sides bind the same key, other's value wins. The count of the result is
// always recomputed from the merged tree rather than derived additively
// (d.Len() + other.Len() would overcount shared keys).
//
// d's root is retained before the fold begins so other's entries are folded
// in via ordinary copy-on-write Assoc semantics without disturbing d or
// other, which both remain valid, independent Dicts after Merge returns.
// That retain is released again once the fold completes, so d's root isn't
// left permanently marked shared and able to still be mutated in place by a
// later Assoc on d alone.
func (d Dict[K, V]) Merge(other Dict[K, V]) Dict[K, V] {
	if other.root == nil {
		return d
	}
	base := d.root
	if base != nil {
		base.refs.Retain()
	}
	merged := mergeInto(base, other.root, d.hasher)
	if base != nil {
		base.refs.Release()
	}
	return Dict[K, V]{root: merged, count: countEntries(merged), hasher: d.hasher}
}

// All calls fn for every (key, value) pair, in an unspecified but
// deterministic order for a fixed tree; it stops early if fn returns false.
// All satisfies persist.EntryWalker.
func (d Dict[K, V]) All(fn func(K, V) bool) {
	walk(d.root, fn)
}

// Items returns every (key, value) pair as a slice, eagerly.
func (d Dict[K, V]) Items() []persist.Pair[K, V] {
	items := make([]persist.Pair[K, V], 0, d.count)
	d.All(func(k K, v V) bool {
		items = append(items, persist.Pair[K, V]{Key: k, Value: v})
		return true
	})
	return items
}
