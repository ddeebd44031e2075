// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package sorteddict

import (
	"reflect"

	"github.com/kamino-go/persist"
)

// Dict is a persistent, ordered key/value collection backed by a red-black
// tree. The zero value is not usable; construct one with NewSortedDict.
type Dict[K any, V any] struct {
	root    *rbnode[K, V]
	cnt     int
	compare persist.Comparer[K]
}

// NewSortedDict returns an empty Dict ordered by compare. Panics with
// persist.MalformedInputError if compare is nil, rather than deferring to
// an opaque nil-interface panic on first Assoc.
func NewSortedDict[K any, V any](compare persist.Comparer[K]) Dict[K, V] {
	if compare == nil {
		panic(persist.MalformedInputError{Reason: "sorteddict: nil Comparer"})
	}
	return Dict[K, V]{compare: compare}
}

// FromSequence builds a Dict from a host-neutral sequence of pairs, in
// order, last-key-wins on duplicates.
func FromSequence[K any, V any](compare persist.Comparer[K], pairs []persist.Pair[K, V]) Dict[K, V] {
	d := NewSortedDict[K, V](compare)
	for _, p := range pairs {
		d = d.Assoc(p.Key, p.Value)
	}
	return d
}

// Len returns the number of entries.
func (d Dict[K, V]) Len() int { return d.cnt }

// Get returns the value associated with key and whether it was present.
func (d Dict[K, V]) Get(key K) (V, bool) {
	return find(d.root, key, d.compare.Compare)
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

func valueEqual[V any](a, b V) bool { return reflect.DeepEqual(a, b) }

// Assoc returns a Dict with key bound to value, leaving the receiver
// unchanged. If key is already bound to an equal value, the receiver is
// returned as-is.
func (d Dict[K, V]) Assoc(key K, value V) Dict[K, V] {
	newRoot, added, changed := insert(d.root, key, value, d.compare.Compare, valueEqual[V])
	if !changed {
		return d
	}
	cnt := d.cnt
	if added {
		cnt++
	}
	return Dict[K, V]{root: newRoot, cnt: cnt, compare: d.compare}
}

// Dissoc returns a Dict with key removed, leaving the receiver unchanged. If
// key was not present, the receiver is returned as-is.
func (d Dict[K, V]) Dissoc(key K) Dict[K, V] {
	newRoot, deleted, deficit := del(d.root, key, d.compare.Compare)
	if !deleted {
		return d
	}
	if deficit && newRoot != nil {
		newRoot = mk(black, newRoot.left, newRoot.key, newRoot.value, newRoot.right)
	}
	return Dict[K, V]{root: newRoot, cnt: d.cnt - 1, compare: d.compare}
}

// First returns the entry with the smallest key, or
// persist.EmptyCollectionError if d is empty.
func (d Dict[K, V]) First() (K, V, error) {
	n := leftmost(d.root)
	if n == nil {
		var zk K
		var zv V
		return zk, zv, persist.EmptyCollectionError{Op: "First"}
	}
	return n.key, n.value, nil
}

// Last returns the entry with the largest key, or
// persist.EmptyCollectionError if d is empty.
func (d Dict[K, V]) Last() (K, V, error) {
	n := rightmost(d.root)
	if n == nil {
		var zk K
		var zv V
		return zk, zv, persist.EmptyCollectionError{Op: "Last"}
	}
	return n.key, n.value, nil
}

// All calls fn for every (key, value) pair in strictly increasing key
// order; it stops early if fn returns false. All satisfies
// persist.EntryWalker.
func (d Dict[K, V]) All(fn func(K, V) bool) {
	walk(d.root, fn)
}

// Items returns every (key, value) pair as a slice, in increasing key
// order.
func (d Dict[K, V]) Items() []persist.Pair[K, V] {
	items := make([]persist.Pair[K, V], 0, d.cnt)
	d.All(func(k K, v V) bool {
		items = append(items, persist.Pair[K, V]{Key: k, Value: v})
		return true
	})
	return items
}

// Subseq returns a new Dict containing exactly the entries with
// lo <= key < hi (half-open), built by a filtered traversal of d rather
// than by reusing d's internal structure.
func (d Dict[K, V]) Subseq(lo, hi K) Dict[K, V] {
	out := NewSortedDict[K, V](d.compare)
	d.All(func(k K, v V) bool {
		if d.compare.Compare(k, lo) >= 0 && d.compare.Compare(k, hi) < 0 {
			out = out.Assoc(k, v)
		}
		return true
	})
	return out
}

// RSubseq returns the same set of entries as Subseq(lo, hi): a forward-
// ordered Dict. "Reverse" is purely a property of how the result is
// consumed — use RIter instead of Iter to walk it from hi down to lo.
func (d Dict[K, V]) RSubseq(lo, hi K) Dict[K, V] {
	return d.Subseq(lo, hi)
}
