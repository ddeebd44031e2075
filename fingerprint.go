// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// cborCodec is the IPLD multicodec code for CBOR-encoded data (dag-cbor).
// It is the value go-ipld-cbor and go-ipld-prime's dag-cbor codec register
// against; kept local here so this package does not need to import either
// codec implementation just to stamp a CID.
const cborCodec = 0x71

// Fingerprint computes a content identifier for the canonical CBOR encoding
// of v: a SHA2-256 multihash wrapped as a CIDv1 with the dag-cbor codec.
// Values that encode to the same bytes get the same Fingerprint. For a
// collection's sequence form that means the same entries listed in the same
// order; whether that order is independent of build history depends on the
// collection (SmallMap, for one, lists its entries in insertion order).
func Fingerprint(v interface{}) (cid.Cid, error) {
	data, err := Marshal(v)
	if err != nil {
		return cid.Undef, err
	}
	digest, err := mh.Sum(data, mh.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cborCodec, digest), nil
}
