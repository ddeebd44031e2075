// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"bytes"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// DefaultDecoder returns a CBOR decoder configured the same way across every
// collection in this module: byte strings unmarshal into []byte via
// encoding.BinaryUnmarshaler when available.
func DefaultDecoder(rd io.Reader) cbor.Decoder {
	opts := cbor.DecOptions{
		BinaryUnmarshaler: cbor.BinaryUnmarshalerByteString,
	}
	mode, err := opts.DecMode()
	check(err)
	return *mode.NewDecoder(rd)
}

// Unmarshal decodes data into v using DefaultDecoder.
func Unmarshal(data []byte, v interface{}) error {
	dec := DefaultDecoder(bytes.NewReader(data))
	return dec.Decode(v)
}

// DefaultEncoder returns a CBOR encoder using canonical encoding: map keys
// sorted, shortest-form integers, so that the same value always encodes to
// identical bytes. Array elements keep the order they are given in, so a
// collection's bytes depend on the order in which it lists its entries.
func DefaultEncoder(w io.Writer) *cbor.Encoder {
	opts := cbor.CanonicalEncOptions()
	opts.BigIntConvert = cbor.BigIntConvertShortest
	mode, err := opts.EncMode()
	check(err)
	return mode.NewEncoder(w)
}

// Marshal encodes v using DefaultEncoder.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := DefaultEncoder(&buf)
	err := enc.Encode(v)
	return buf.Bytes(), err
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// Pair is the host-neutral sequence-form element for every keyed
// collection (HashDict, SmallMap, SortedDict): a CBOR 2-array of key then
// value, via the `cbor:",toarray"` struct tag.
type Pair[K any, V any] struct {
	_     struct{} `cbor:",toarray"`
	Key   K
	Value V
}

// MarshalPairs encodes a slice of Pairs as the host-neutral sequence form
// for a keyed collection.
func MarshalPairs[K any, V any](pairs []Pair[K, V]) ([]byte, error) {
	return Marshal(pairs)
}

// UnmarshalPairs decodes the host-neutral sequence form for a keyed
// collection. A malformed payload is reported as MalformedInputError rather
// than the raw CBOR error, so callers can type-switch on the error taxonomy
// instead of the underlying codec's error type.
func UnmarshalPairs[K any, V any](data []byte) ([]Pair[K, V], error) {
	var pairs []Pair[K, V]
	if err := Unmarshal(data, &pairs); err != nil {
		return nil, MalformedInputError{Reason: err.Error()}
	}
	return pairs, nil
}

// MarshalValues encodes a slice of values as the host-neutral sequence form
// for Vector and HashSet.
func MarshalValues[V any](values []V) ([]byte, error) {
	return Marshal(values)
}

// UnmarshalValues decodes the host-neutral sequence form for Vector and
// HashSet.
func UnmarshalValues[V any](data []byte) ([]V, error) {
	var values []V
	if err := Unmarshal(data, &values); err != nil {
		return nil, MalformedInputError{Reason: err.Error()}
	}
	return values, nil
}
