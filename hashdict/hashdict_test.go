// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package hashdict

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kamino-go/persist"
)

func TestDictAssocPersistsOriginal(t *testing.T) {
	r := require.New(t)

	d0 := NewHashDict[string, string](persist.StringHasher{})
	d1 := d0.Assoc("name", "Alice")
	r.Equal(1, d1.Len())
	r.Equal(0, d0.Len())

	d2 := d1.Assoc("age", "30")
	r.Equal(2, d2.Len())
	r.Equal(1, d1.Len())

	v, ok := d2.Get("name")
	r.True(ok)
	r.Equal("Alice", v)

	v, ok = d2.Get("age")
	r.True(ok)
	r.Equal("30", v)

	_, ok = d1.Get("age")
	r.False(ok)
}

func TestDictAssocReplacesValue(t *testing.T) {
	r := require.New(t)

	d := NewHashDict[string, string](persist.StringHasher{})
	d = d.Assoc("a", "1").Assoc("b", "2").Assoc("c", "3").Assoc("d", "4")
	r.Equal(4, d.Len())

	d2 := d.Assoc("b", "new-2")
	r.Equal(4, d2.Len())

	v, ok := d.Get("b")
	r.True(ok)
	r.Equal("2", v)

	v, ok = d2.Get("b")
	r.True(ok)
	r.Equal("new-2", v)
}

func TestDictAssocSameValueIsNoOp(t *testing.T) {
	r := require.New(t)

	d := NewHashDict[string, int](persist.StringHasher{}).Assoc("a", 1)
	d2 := d.Assoc("a", 1)
	r.Equal(d.Len(), d2.Len())
	v, ok := d2.Get("a")
	r.True(ok)
	r.Equal(1, v)
}

func TestDictDissoc(t *testing.T) {
	r := require.New(t)

	d := NewHashDict[string, string](persist.StringHasher{})
	d = d.Assoc("a", "1").Assoc("b", "2").Assoc("c", "3").Assoc("d", "4")

	d2 := d.Dissoc("a")
	r.Equal(3, d2.Len())
	_, ok := d2.Get("a")
	r.False(ok)

	// Original unaffected.
	v, ok := d.Get("a")
	r.True(ok)
	r.Equal("1", v)

	d3 := d2.Dissoc("not-exists")
	r.Equal(3, d3.Len())

	d4 := d2.Dissoc("b").Dissoc("c")
	r.Equal(1, d4.Len())
	v, ok = d4.Get("d")
	r.True(ok)
	r.Equal("4", v)

	d5 := d4.Dissoc("d")
	r.Equal(0, d5.Len())
	_, ok = d5.Get("d")
	r.False(ok)
}

func TestDictManyKeysSurviveCollisionFallback(t *testing.T) {
	r := require.New(t)

	d := NewHashDict[string, int](persist.StringHasher{})
	const n = 5000
	for i := 0; i < n; i++ {
		d = d.Assoc(fmt.Sprintf("key-%d", i), i)
	}
	r.Equal(n, d.Len())

	for i := 0; i < n; i++ {
		v, ok := d.Get(fmt.Sprintf("key-%d", i))
		r.True(ok)
		r.Equal(i, v)
	}

	for i := 0; i < n; i += 2 {
		d = d.Dissoc(fmt.Sprintf("key-%d", i))
	}
	r.Equal(n/2, d.Len())
	for i := 1; i < n; i += 2 {
		_, ok := d.Get(fmt.Sprintf("key-%d", i))
		r.True(ok)
	}
}

func TestDictMergeRightHandWins(t *testing.T) {
	r := require.New(t)

	a := NewHashDict[string, int](persist.StringHasher{}).Assoc("a", 1).Assoc("b", 2)
	b := NewHashDict[string, int](persist.StringHasher{}).Assoc("b", 20).Assoc("c", 3)

	merged := a.Merge(b)
	r.Equal(3, merged.Len())

	v, ok := merged.Get("a")
	r.True(ok)
	r.Equal(1, v)

	v, ok = merged.Get("b")
	r.True(ok)
	r.Equal(20, v)

	v, ok = merged.Get("c")
	r.True(ok)
	r.Equal(3, v)

	// Both originals untouched.
	r.Equal(2, a.Len())
	r.Equal(2, b.Len())
	v, ok = a.Get("b")
	r.True(ok)
	r.Equal(2, v)
}

func TestDictMergeCountIsRecomputedNotAdditive(t *testing.T) {
	r := require.New(t)

	a := NewHashDict[string, int](persist.StringHasher{}).Assoc("x", 1).Assoc("y", 2)
	b := NewHashDict[string, int](persist.StringHasher{}).Assoc("x", 10).Assoc("y", 20)

	merged := a.Merge(b)
	r.Equal(2, merged.Len(), "overlapping keys must not be double-counted")
}

func TestDictIteratorSurvivesOriginalGoingOutOfScope(t *testing.T) {
	r := require.New(t)

	build := func() *Iterator[string, int] {
		d := NewHashDict[string, int](persist.StringHasher{}).Assoc("a", 1).Assoc("b", 2)
		return d.Merge(NewHashDict[string, int](persist.StringHasher{}).Assoc("c", 3)).Iter()
	}

	it := build()
	seen := map[string]int{}
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		seen[k] = v
	}
	r.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, seen)
}

func TestDictAllStopsEarly(t *testing.T) {
	r := require.New(t)

	d := NewHashDict[string, int](persist.StringHasher{}).Assoc("a", 1).Assoc("b", 2).Assoc("c", 3)

	var count int
	d.All(func(k string, v int) bool {
		count++
		return count < 2
	})
	r.Equal(2, count)
}

func TestDictCBORRoundTrip(t *testing.T) {
	r := require.New(t)

	d := NewHashDict[string, int](persist.StringHasher{}).Assoc("a", 1).Assoc("b", 2).Assoc("c", 3)
	data, err := d.MarshalCBOR()
	r.NoError(err)

	var d2 Dict[string, int]
	err = d2.UnmarshalCBOR(data, persist.StringHasher{})
	r.NoError(err)
	r.Equal(d.Len(), d2.Len())

	v, ok := d2.Get("b")
	r.True(ok)
	r.Equal(2, v)
}

func TestDictFingerprintIgnoresBuildHistory(t *testing.T) {
	r := require.New(t)

	a := NewHashDict[string, int](persist.StringHasher{}).Assoc("a", 1).Assoc("b", 2).Assoc("c", 3)
	b := NewHashDict[string, int](persist.StringHasher{}).Assoc("c", 3).Assoc("a", 1).Assoc("b", 2)

	fa, err := a.Fingerprint()
	r.NoError(err)
	fb, err := b.Fingerprint()
	r.NoError(err)
	r.True(fa.Equals(fb))

	c := a.Assoc("a", 99)
	fc, err := c.Fingerprint()
	r.NoError(err)
	r.False(fa.Equals(fc))
}

func TestDictStructuralSharingAcrossVariants(t *testing.T) {
	r := require.New(t)

	base := NewHashDict[int, int](persist.IntHasher{})
	for i := 0; i < 1000; i++ {
		base = base.Assoc(i, i*2)
	}
	r.Equal(1000, base.Len())

	variants := make([]Dict[int, int], 100)
	for i := 0; i < 100; i++ {
		variants[i] = base.Assoc(10000+i, i)
	}

	r.Equal(1000, base.Len())
	for i, v := range variants {
		r.Equal(1001, v.Len())
		_, ok := v.Get(10000 + i)
		r.True(ok)
		for j := range variants {
			if j == i {
				continue
			}
			_, ok := v.Get(10000 + j)
			r.False(ok)
		}
	}
}

func TestDictMergeOverlappingRanges(t *testing.T) {
	r := require.New(t)

	a := NewHashDict[int, int](persist.IntHasher{})
	for i := 0; i < 10000; i++ {
		a = a.Assoc(i, i)
	}
	b := NewHashDict[int, int](persist.IntHasher{})
	for i := 5000; i < 15000; i++ {
		b = b.Assoc(i, i)
	}

	c := a.Merge(b)
	r.Equal(15000, c.Len())

	items := c.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	r.Equal(0, items[0].Key)
	r.Equal(0, items[0].Value)
	r.Equal(14999, items[14999].Key)
	r.Equal(14999, items[14999].Value)
}

// fixedHashKey forces every instance to the same bucket, per-key identity
// carried in Value so Equal can still tell distinct keys apart.
type fixedHashKey struct {
	Value int
}

type fixedHasher struct{}

func (fixedHasher) Hash(k fixedHashKey) uint64   { return 12345 }
func (fixedHasher) Equal(a, b fixedHashKey) bool { return a.Value == b.Value }

func TestDictCollisionBucketOneHundredKeys(t *testing.T) {
	r := require.New(t)

	d := NewHashDict[fixedHashKey, int](fixedHasher{})
	for i := 0; i < 100; i++ {
		d = d.Assoc(fixedHashKey{Value: i}, i)
	}
	r.Equal(100, d.Len())
	for i := 0; i < 100; i++ {
		v, ok := d.Get(fixedHashKey{Value: i})
		r.True(ok)
		r.Equal(i, v)
	}

	d = d.Dissoc(fixedHashKey{Value: 50})
	r.Equal(99, d.Len())
	_, ok := d.Get(fixedHashKey{Value: 50})
	r.False(ok)
	for i := 0; i < 100; i++ {
		if i == 50 {
			continue
		}
		v, ok := d.Get(fixedHashKey{Value: i})
		r.True(ok)
		r.Equal(i, v)
	}
}

func TestDictIteratorOverUnnamedMergeResult(t *testing.T) {
	r := require.New(t)

	pm1 := NewHashDict[int, int](persist.IntHasher{})
	for i := 0; i < 10000; i++ {
		pm1 = pm1.Assoc(i, i)
	}
	pm2 := NewHashDict[int, int](persist.IntHasher{})
	for i := 5000; i < 15000; i++ {
		pm2 = pm2.Assoc(i, i)
	}

	items := pm1.Merge(pm2).Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	r.Len(items, 15000)
	r.Equal(0, items[0].Key)
	r.Equal(14999, items[14999].Key)
}
