// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"bytes"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Hasher is the host bridge HashDict and HashSet require: a
// deterministic hash over a key plus an equality relation consistent with
// it (equal keys must hash equal). SmallMap takes a plain key-equality
// function instead. Implementations must be safe to call
// concurrently from multiple goroutines holding the same collection.
type Hasher[K any] interface {
	Hash(k K) uint64
	Equal(a, b K) bool
}

// Comparer is the host bridge SortedDict requires: a total order over keys.
// Compare returns a negative number if a < b, zero if a == b, and a
// positive number if a > b.
type Comparer[K any] interface {
	Compare(a, b K) int
}

// BytesHasher is the default Hasher for []byte keys, grounded on the
// xxhash-based key hashing the HAMT engine uses internally.
type BytesHasher struct{}

// Hash returns the xxhash64 digest of k.
func (BytesHasher) Hash(k []byte) uint64 { return xxhash.Sum64(k) }

// Equal reports whether a and b contain the same bytes.
func (BytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// BytesComparer is the default Comparer for []byte keys (lexicographic).
type BytesComparer struct{}

// Compare returns bytes.Compare(a, b).
func (BytesComparer) Compare(a, b []byte) int { return bytes.Compare(a, b) }

// StringHasher is the default Hasher for string keys.
type StringHasher struct{}

// Hash returns the xxhash64 digest of k's bytes.
func (StringHasher) Hash(k string) uint64 { return xxhash.Sum64String(k) }

// Equal reports whether a and b are the same string.
func (StringHasher) Equal(a, b string) bool { return a == b }

// StringComparer is the default Comparer for string keys.
type StringComparer struct{}

// Compare returns strings.Compare(a, b).
func (StringComparer) Compare(a, b string) int { return strings.Compare(a, b) }

// IntHasher is a Hasher for int keys. It is
// provided because int-keyed collections are common in tests and small
// in-memory indexes; the hash mixes the value through xxhash rather than
// using it directly, so adversarial key sequences do not all land in the
// same trie branch.
type IntHasher struct{}

// Hash mixes k through xxhash.
func (IntHasher) Hash(k int) uint64 {
	var buf [8]byte
	u := uint64(k)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}

// Equal reports whether a == b.
func (IntHasher) Equal(a, b int) bool { return a == b }

// IntComparer is the default Comparer for int keys.
type IntComparer struct{}

// Compare returns -1, 0 or 1 depending on the ordering of a and b.
func (IntComparer) Compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
