// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

// Package smallmap implements SmallMap, a persistent fixed-capacity
// key/value collection backed by a flat array and a linear scan, grounded
// on the array-based linear-scan map in the TomTonic multimap package —
// generalized from its mutex-guarded mutable slice to a value type that
// copies its backing array on every write instead of locking it, since
// SmallMap values are immutable and therefore inherently safe to share.
package smallmap

import (
	"reflect"

	"github.com/kamino-go/persist"
)

// Capacity is the maximum number of entries a SmallMap can hold. Past this
// point, Assoc and FromSequence report persist.CapacityExceededError;
// callers that need to grow further should Promote to a HashDict.
const Capacity = 8

// Entry is one key/value pair held by a SmallMap.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Map is a persistent map backed by a flat slice of at most Capacity
// entries and a linear scan, intended for the small-cardinality case: no
// hashing, no tree, and a capacity so small that scanning it beats
// descending any tree. The zero value has no equality function, so key
// lookups on it panic once it holds an entry; construct one with
// NewSmallMap.
type Map[K any, V any] struct {
	entries []Entry[K, V]
	equal   func(a, b K) bool
}

// NewSmallMap returns an empty Map using equal to compare keys. Panics
// with persist.MalformedInputError if equal is nil, rather than deferring
// to an opaque nil-func-call panic on first Assoc.
func NewSmallMap[K any, V any](equal func(a, b K) bool) Map[K, V] {
	if equal == nil {
		panic(persist.MalformedInputError{Reason: "smallmap: nil equality function"})
	}
	return Map[K, V]{equal: equal}
}

// FromSequence builds a Map from a host-neutral sequence of pairs, in
// order, last-key-wins on duplicates. Returns persist.CapacityExceededError
// if pairs holds more than Capacity distinct keys.
func FromSequence[K any, V any](equal func(a, b K) bool, pairs []persist.Pair[K, V]) (Map[K, V], error) {
	m := NewSmallMap[K, V](equal)
	for _, p := range pairs {
		var err error
		m, err = m.Assoc(p.Key, p.Value)
		if err != nil {
			return Map[K, V]{}, err
		}
	}
	return m, nil
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int { return len(m.entries) }

func (m Map[K, V]) indexOf(key K) int {
	for i := range m.entries {
		if m.equal(m.entries[i].Key, key) {
			return i
		}
	}
	return -1
}

// Get returns the value associated with key and whether it was present.
func (m Map[K, V]) Get(key K) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m Map[K, V]) Contains(key K) bool {
	return m.indexOf(key) >= 0
}

// MustGet returns the value associated with key, panicking with a
// persist.KeyNotFoundError if it is absent.
func (m Map[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(persist.KeyNotFoundError{Key: key})
	}
	return v
}

// Assoc returns a Map with key bound to value, leaving the receiver
// unchanged. Reports persist.CapacityExceededError if key is new and the
// receiver is already at Capacity.
func (m Map[K, V]) Assoc(key K, value V) (Map[K, V], error) {
	if i := m.indexOf(key); i >= 0 {
		if reflect.DeepEqual(m.entries[i].Value, value) {
			return m, nil
		}
		out := Map[K, V]{entries: append([]Entry[K, V](nil), m.entries...), equal: m.equal}
		out.entries[i] = Entry[K, V]{Key: key, Value: value}
		return out, nil
	}
	if len(m.entries) >= Capacity {
		return Map[K, V]{}, persist.CapacityExceededError{Capacity: Capacity, Attempted: len(m.entries) + 1}
	}
	out := Map[K, V]{
		entries: append(append([]Entry[K, V](nil), m.entries...), Entry[K, V]{Key: key, Value: value}),
		equal:   m.equal,
	}
	return out, nil
}

// Dissoc returns a Map with key removed, leaving the receiver unchanged. If
// key was not present, the receiver is returned as-is.
func (m Map[K, V]) Dissoc(key K) Map[K, V] {
	i := m.indexOf(key)
	if i < 0 {
		return m
	}
	out := make([]Entry[K, V], 0, len(m.entries)-1)
	out = append(out, m.entries[:i]...)
	out = append(out, m.entries[i+1:]...)
	return Map[K, V]{entries: out, equal: m.equal}
}

// All calls fn for every (key, value) pair in insertion order; it stops
// early if fn returns false. All satisfies persist.EntryWalker.
func (m Map[K, V]) All(fn func(K, V) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Items returns every (key, value) pair as a slice, in insertion order.
func (m Map[K, V]) Items() []persist.Pair[K, V] {
	items := make([]persist.Pair[K, V], len(m.entries))
	for i, e := range m.entries {
		items[i] = persist.Pair[K, V]{Key: e.Key, Value: e.Value}
	}
	return items
}

// Promoter builds a larger keyed collection from a sequence of pairs; the
// hashdict package's FromSequence, bound to a Hasher in a closure, serves
// as one without Map needing to import hashdict back (which would make the
// two packages import each other).
type Promoter[K any, V any, D any] func(pairs []persist.Pair[K, V]) D

// Promote converts m into whatever keyed collection build is, typically
// hashdict.FromSequence bound to a Hasher, for callers that have outgrown
// SmallMap's fixed capacity.
func Promote[K any, V any, D any](m Map[K, V], build Promoter[K, V, D]) D {
	return build(m.Items())
}
