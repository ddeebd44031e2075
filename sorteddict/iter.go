// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package sorteddict

// Iterator yields every (key, value) pair of the Dict it was created from
// in strictly increasing key order (strictly decreasing when it comes from
// RIter). It holds its own pointer to that Dict's
// root, so it stays valid for its whole lifetime even if nothing else still
// names the Dict it was built from (for example an unnamed intermediate
// produced by d.Subseq(lo, hi).Iter()).
type Iterator[K any, V any] struct {
	stack   []*rbnode[K, V]
	reverse bool
}

// Iter returns a lazy Iterator that walks d from its smallest key to its
// largest.
func (d Dict[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	it.push(d.root)
	return it
}

// RIter returns a lazy Iterator that walks d from its largest key to its
// smallest — the cursor half of the rsubseq contract (see RSubseq).
func (d Dict[K, V]) RIter() *Iterator[K, V] {
	it := &Iterator[K, V]{reverse: true}
	it.push(d.root)
	return it
}

func (it *Iterator[K, V]) push(n *rbnode[K, V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		if it.reverse {
			n = n.right
		} else {
			n = n.left
		}
	}
}

// Next advances the iterator, returning the next key and value and true, or
// the zero values and false once every entry in range has been visited.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	if len(it.stack) == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.reverse {
		it.push(n.left)
	} else {
		it.push(n.right)
	}
	return n.key, n.value, true
}
