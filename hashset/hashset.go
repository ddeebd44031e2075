// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

// Package hashset implements HashSet as a thin façade over hashdict.Dict,
// binding every member to a single shared sentinel value rather than
// building a parallel tree structure.
package hashset

import (
	"github.com/kamino-go/persist"
	"github.com/kamino-go/persist/hashdict"
)

var sentinel = struct{}{}

// Set is a persistent, unordered collection of distinct values. The zero
// value is not usable; construct one with NewHashSet.
type Set[T any] struct {
	dict hashdict.Dict[T, struct{}]
}

// NewHashSet returns an empty Set using hasher for member hashing and
// equality. Panics with persist.MalformedInputError if hasher is nil (via
// the underlying hashdict.Dict's own constructor check).
func NewHashSet[T any](hasher persist.Hasher[T]) Set[T] {
	return Set[T]{dict: hashdict.NewHashDict[T, struct{}](hasher)}
}

// FromSlice builds a Set containing every element of items, using hasher.
func FromSlice[T any](hasher persist.Hasher[T], items []T) Set[T] {
	s := NewHashSet[T](hasher)
	for _, item := range items {
		s = s.Add(item)
	}
	return s
}

// Len returns the number of members.
func (s Set[T]) Len() int { return s.dict.Len() }

// Contains reports whether value is a member.
func (s Set[T]) Contains(value T) bool {
	return s.dict.Contains(value)
}

// Add returns a Set with value present, leaving the receiver unchanged.
func (s Set[T]) Add(value T) Set[T] {
	return Set[T]{dict: s.dict.Assoc(value, sentinel)}
}

// Remove returns a Set with value absent, leaving the receiver unchanged.
func (s Set[T]) Remove(value T) Set[T] {
	return Set[T]{dict: s.dict.Dissoc(value)}
}

// All calls fn for every member; it stops early if fn returns false.
func (s Set[T]) All(fn func(T) bool) {
	s.dict.All(func(k T, _ struct{}) bool {
		return fn(k)
	})
}

// Items returns every member as a slice.
func (s Set[T]) Items() []T {
	items := make([]T, 0, s.Len())
	s.All(func(v T) bool {
		items = append(items, v)
		return true
	})
	return items
}

// Union returns a Set containing every member of s or other (or both).
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := s
	other.All(func(v T) bool {
		result = result.Add(v)
		return true
	})
	return result
}

// Intersection returns a Set containing every member present in both s and
// other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	result := NewHashSet[T](s.dict.Hasher())
	s.All(func(v T) bool {
		if other.Contains(v) {
			result = result.Add(v)
		}
		return true
	})
	return result
}

// Difference returns a Set containing every member of s that is not also a
// member of other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	result := NewHashSet[T](s.dict.Hasher())
	s.All(func(v T) bool {
		if !other.Contains(v) {
			result = result.Add(v)
		}
		return true
	})
	return result
}

// SymmetricDifference returns a Set containing every member present in
// exactly one of s and other.
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	return s.Difference(other).Union(other.Difference(s))
}

// IsSubset reports whether every member of s is also a member of other.
func (s Set[T]) IsSubset(other Set[T]) bool {
	subset := true
	s.All(func(v T) bool {
		if !other.Contains(v) {
			subset = false
			return false
		}
		return true
	})
	return subset
}

// IsSuperset reports whether every member of other is also a member of s.
func (s Set[T]) IsSuperset(other Set[T]) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other share no members.
func (s Set[T]) IsDisjoint(other Set[T]) bool {
	disjoint := true
	s.All(func(v T) bool {
		if other.Contains(v) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}
