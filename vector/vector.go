// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/kamino-go/persist"
)

// Vector is a persistent, indexed sequence. The zero value is an empty
// Vector and is directly usable; NewVector is provided for symmetry with
// the other collections.
type Vector[T any] struct {
	count int
	shift uint
	root  *node[T]
	tail  []T
}

// NewVector returns an empty Vector.
func NewVector[T any]() Vector[T] {
	return Vector[T]{}
}

// FromSlice builds a Vector containing every element of items, in order.
func FromSlice[T any](items []T) Vector[T] {
	v := NewVector[T]()
	for _, item := range items {
		v = v.Conj(item)
	}
	return v
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.count }

func (v Vector[T]) tailoff() int { return v.count - len(v.tail) }

func normalizeIndex(i, count int) int {
	if i < 0 {
		return i + count
	}
	return i
}

// Nth returns the element at index i. A negative i is normalized as
// i+Len(); an index still out of [0, Len()) reports IndexOutOfRangeError.
func (v Vector[T]) Nth(i int) (T, error) {
	var zero T
	idx := normalizeIndex(i, v.count)
	if idx < 0 || idx >= v.count {
		return zero, persist.IndexOutOfRangeError{Index: i, Count: v.count}
	}
	if idx >= v.tailoff() {
		return v.tail[idx-v.tailoff()], nil
	}
	leaf := arrayFor(v.root, v.shift, idx)
	return leaf.leaves[idx&mask], nil
}

// MustNth returns the element at index i, panicking with
// persist.IndexOutOfRangeError if i is out of range.
func (v Vector[T]) MustNth(i int) T {
	val, err := v.Nth(i)
	if err != nil {
		panic(err)
	}
	return val
}

// Assoc returns a Vector with index i bound to val, leaving the receiver
// unchanged. i == Len() behaves as Conj. Any other out-of-range i reports
// IndexOutOfRangeError.
func (v Vector[T]) Assoc(i int, val T) (Vector[T], error) {
	idx := normalizeIndex(i, v.count)
	if idx == v.count {
		return v.Conj(val), nil
	}
	if idx < 0 || idx >= v.count {
		return Vector[T]{}, persist.IndexOutOfRangeError{Index: i, Count: v.count}
	}
	if idx >= v.tailoff() {
		newtail := append([]T(nil), v.tail...)
		newtail[idx-v.tailoff()] = val
		return Vector[T]{count: v.count, shift: v.shift, root: v.root, tail: newtail}, nil
	}
	newroot := doAssoc(v.shift, v.root, idx, val)
	return Vector[T]{count: v.count, shift: v.shift, root: newroot, tail: v.tail}, nil
}

// Conj appends val, returning a new Vector and leaving the receiver
// unchanged.
func (v Vector[T]) Conj(val T) Vector[T] {
	if len(v.tail) < width {
		newtail := make([]T, len(v.tail)+1)
		copy(newtail, v.tail)
		newtail[len(v.tail)] = val
		return Vector[T]{count: v.count + 1, shift: v.shift, root: v.root, tail: newtail}
	}

	tailNode := &node[T]{}
	copy(tailNode.leaves[:], v.tail)

	newshift := v.shift
	var newroot *node[T]
	switch {
	case v.root == nil:
		newroot = tailNode
	case (v.count >> bitsPerLevel) > (1 << v.shift):
		newroot = &node[T]{}
		newroot.children[0] = v.root
		newroot.children[1] = newPath(v.shift, tailNode)
		newshift = v.shift + bitsPerLevel
	default:
		newroot = pushTail(v.shift, v.count, v.root, tailNode)
	}
	return Vector[T]{count: v.count + 1, shift: newshift, root: newroot, tail: []T{val}}
}

// Pop removes the last element, returning persist.EmptyCollectionError if
// the Vector is empty.
func (v Vector[T]) Pop() (Vector[T], error) {
	switch v.count {
	case 0:
		return Vector[T]{}, persist.EmptyCollectionError{Op: "Pop"}
	case 1:
		return NewVector[T](), nil
	}

	if len(v.tail) > 1 {
		newtail := append([]T(nil), v.tail[:len(v.tail)-1]...)
		return Vector[T]{count: v.count - 1, shift: v.shift, root: v.root, tail: newtail}, nil
	}

	newtailLeaf := arrayFor(v.root, v.shift, v.count-2)
	newtail := append([]T(nil), newtailLeaf.leaves[:]...)

	var newroot *node[T]
	newshift := v.shift
	if v.shift == 0 {
		// root is itself the sole leaf; removing the last full leaf from a
		// one-level trie empties it back to nil.
		newroot = nil
		newshift = 0
	} else {
		newroot = popTail(v.shift, v.count, v.root)
		if newroot == nil {
			newshift = 0
		} else {
			for newshift > 0 && newroot.children[1] == nil {
				newroot = newroot.children[0]
				newshift -= bitsPerLevel
			}
		}
	}
	return Vector[T]{count: v.count - 1, shift: newshift, root: newroot, tail: newtail}, nil
}

// All calls fn for every element in index order, stopping early if fn
// returns false. All satisfies persist.EntryWalker once paired with the
// index as key.
func (v Vector[T]) All(fn func(int, T) bool) {
	for i := 0; i < v.count; i++ {
		val, _ := v.Nth(i)
		if !fn(i, val) {
			return
		}
	}
}

// Items returns every element as a slice, in index order.
func (v Vector[T]) Items() []T {
	items := make([]T, 0, v.count)
	v.All(func(_ int, val T) bool {
		items = append(items, val)
		return true
	})
	return items
}

// Slice returns a new Vector holding the elements at [lo, hi), copied
// element-wise; it does not reuse any structure from the receiver.
func (v Vector[T]) Slice(lo, hi int) (Vector[T], error) {
	switch {
	case lo < 0 || lo > v.count:
		return Vector[T]{}, persist.IndexOutOfRangeError{Index: lo, Count: v.count}
	case hi < lo || hi > v.count:
		return Vector[T]{}, persist.IndexOutOfRangeError{Index: hi, Count: v.count}
	}
	out := NewVector[T]()
	for i := lo; i < hi; i++ {
		val, _ := v.Nth(i)
		out = out.Conj(val)
	}
	return out, nil
}
