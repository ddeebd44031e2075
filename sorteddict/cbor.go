// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package sorteddict

import (
	"github.com/ipfs/go-cid"
	format "github.com/ipfs/go-ipld-format"
	"github.com/ipld/go-ipld-prime"

	"github.com/kamino-go/persist"
)

// MarshalCBOR encodes d as the host-neutral sequence form: a canonical CBOR
// array of key/value pairs in increasing key order.
func (d Dict[K, V]) MarshalCBOR() ([]byte, error) {
	return persist.MarshalPairs(d.Items())
}

// UnmarshalCBOR decodes the host-neutral sequence form produced by
// MarshalCBOR, rebuilding the tree with compare. The receiver's existing
// content, if any, is discarded.
func (d *Dict[K, V]) UnmarshalCBOR(data []byte, compare persist.Comparer[K]) error {
	pairs, err := persist.UnmarshalPairs[K, V](data)
	if err != nil {
		return err
	}
	*d = FromSequence(compare, pairs)
	return nil
}

// Fingerprint returns the content identifier of d's host-neutral sequence
// form. Because that form is already ordered by key, two Dicts with
// identical entries always fingerprint identically.
func (d Dict[K, V]) Fingerprint() (cid.Cid, error) {
	return persist.Fingerprint(d.Items())
}

// ToLegacyIPLDNode exposes d's sequence form as a go-ipld-format Node.
func (d Dict[K, V]) ToLegacyIPLDNode() (format.Node, error) {
	return persist.ToLegacyIPLDNode(d.Items())
}

// ToIPLDNode exposes d's sequence form as a go-ipld-prime Node.
func (d Dict[K, V]) ToIPLDNode() (ipld.Node, error) {
	return persist.ToIPLDNode(d.Items())
}
