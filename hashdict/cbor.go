// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package hashdict

import (
	"github.com/ipfs/go-cid"
	format "github.com/ipfs/go-ipld-format"
	"github.com/ipld/go-ipld-prime"

	"github.com/kamino-go/persist"
)

// MarshalCBOR encodes d as the host-neutral sequence form: a canonical CBOR
// array of key/value pairs in d's own traversal order. Traversal order
// depends only on each key's hash, except that keys whose full 64-bit
// hashes are equal share a collision node and are listed in the order they
// were inserted. Apart from such keys, two Dicts with identical content
// produce identical bytes regardless of how each was built.
func (d Dict[K, V]) MarshalCBOR() ([]byte, error) {
	return persist.MarshalPairs(d.Items())
}

// UnmarshalCBOR decodes the host-neutral sequence form produced by
// MarshalCBOR, rebuilding the trie with hasher. The receiver's existing
// content, if any, is discarded.
func (d *Dict[K, V]) UnmarshalCBOR(data []byte, hasher persist.Hasher[K]) error {
	pairs, err := persist.UnmarshalPairs[K, V](data)
	if err != nil {
		return err
	}
	*d = FromSequence(hasher, pairs)
	return nil
}

// Fingerprint returns the content identifier of d's host-neutral sequence
// form (see persist.Fingerprint): two Dicts with identical entries
// fingerprint identically, independent of internal tree shape, unless they
// hold keys with equal 64-bit hashes inserted in a different order (see
// MarshalCBOR).
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
