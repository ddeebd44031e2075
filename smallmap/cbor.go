// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package smallmap

import (
	"github.com/ipfs/go-cid"
	format "github.com/ipfs/go-ipld-format"
	"github.com/ipld/go-ipld-prime"

	"github.com/kamino-go/persist"
)

// MarshalCBOR encodes m as the host-neutral sequence form: a canonical CBOR
// array of key/value pairs in insertion order.
func (m Map[K, V]) MarshalCBOR() ([]byte, error) {
	return persist.MarshalPairs(m.Items())
}

// UnmarshalCBOR decodes the host-neutral sequence form produced by
// MarshalCBOR, rebuilding the array with equal. The receiver's existing
// content, if any, is discarded. Reports persist.CapacityExceededError if
// the payload holds more than Capacity distinct keys.
func (m *Map[K, V]) UnmarshalCBOR(data []byte, equal func(a, b K) bool) error {
	pairs, err := persist.UnmarshalPairs[K, V](data)
	if err != nil {
		return err
	}
	rebuilt, err := FromSequence(equal, pairs)
	if err != nil {
		return err
	}
	*m = rebuilt
	return nil
}

// Fingerprint returns the content identifier of m's host-neutral sequence
// form. Two Maps with identical entries in the same insertion order always
// fingerprint identically.
func (m Map[K, V]) Fingerprint() (cid.Cid, error) {
	return persist.Fingerprint(m.Items())
}

// ToLegacyIPLDNode exposes m's sequence form as a go-ipld-format Node.
func (m Map[K, V]) ToLegacyIPLDNode() (format.Node, error) {
	return persist.ToLegacyIPLDNode(m.Items())
}

// ToIPLDNode exposes m's sequence form as a go-ipld-prime Node.
func (m Map[K, V]) ToIPLDNode() (ipld.Node, error) {
	return persist.ToIPLDNode(m.Items())
}
