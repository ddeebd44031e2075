// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/ipfs/go-cid"
	format "github.com/ipfs/go-ipld-format"
	"github.com/ipld/go-ipld-prime"

	"github.com/kamino-go/persist"
)

// MarshalCBOR encodes v as the host-neutral sequence form: a canonical
// CBOR array of its elements in index order.
func (v Vector[T]) MarshalCBOR() ([]byte, error) {
	return persist.MarshalValues(v.Items())
}

// UnmarshalCBOR decodes the host-neutral sequence form produced by
// MarshalCBOR. The receiver's existing content, if any, is discarded.
func (v *Vector[T]) UnmarshalCBOR(data []byte) error {
	items, err := persist.UnmarshalValues[T](data)
	if err != nil {
		return err
	}
	*v = FromSlice(items)
	return nil
}

// Fingerprint returns the content identifier of v's host-neutral sequence
// form.
func (v Vector[T]) Fingerprint() (cid.Cid, error) {
	return persist.Fingerprint(v.Items())
}

// ToLegacyIPLDNode exposes v's sequence form as a go-ipld-format Node.
func (v Vector[T]) ToLegacyIPLDNode() (format.Node, error) {
	return persist.ToLegacyIPLDNode(v.Items())
}

// ToIPLDNode exposes v's sequence form as a go-ipld-prime Node.
func (v Vector[T]) ToIPLDNode() (ipld.Node, error) {
	return persist.ToIPLDNode(v.Items())
}
