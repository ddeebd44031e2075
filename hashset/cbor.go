// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package hashset

import (
	"github.com/ipfs/go-cid"
	format "github.com/ipfs/go-ipld-format"
	"github.com/ipld/go-ipld-prime"

	"github.com/kamino-go/persist"
)

// MarshalCBOR encodes s as the host-neutral sequence form: a canonical
// CBOR array of its members in an unspecified but deterministic order for
// a given tree shape.
func (s Set[T]) MarshalCBOR() ([]byte, error) {
	return persist.MarshalValues(s.Items())
}

// UnmarshalCBOR decodes the host-neutral sequence form produced by
// MarshalCBOR, using hasher to rebuild the underlying dict. The receiver's
// existing content, if any, is discarded.
func (s *Set[T]) UnmarshalCBOR(data []byte, hasher persist.Hasher[T]) error {
	items, err := persist.UnmarshalValues[T](data)
	if err != nil {
		return err
	}
	*s = FromSlice(hasher, items)
	return nil
}

// Fingerprint returns the content identifier of s's host-neutral sequence
// form.
func (s Set[T]) Fingerprint() (cid.Cid, error) {
	return persist.Fingerprint(s.Items())
}

// ToLegacyIPLDNode exposes s's sequence form as a go-ipld-format Node.
func (s Set[T]) ToLegacyIPLDNode() (format.Node, error) {
	return persist.ToLegacyIPLDNode(s.Items())
}

// ToIPLDNode exposes s's sequence form as a go-ipld-prime Node.
func (s Set[T]) ToIPLDNode() (ipld.Node, error) {
	return persist.ToIPLDNode(s.Items())
}
