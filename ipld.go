// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"bytes"

	cbornode "github.com/ipfs/go-ipld-cbor"
	format "github.com/ipfs/go-ipld-format"
	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

// mhSHA2256 is the multihash code for SHA2-256, the digest Fingerprint
// also uses.
const mhSHA2256 = 0x12

// ToLegacyIPLDNode encodes v with go-ipld-cbor's own CBOR encoder (not
// Marshal) and wraps the result as a go-ipld-format Node (the object model
// go-ipld-cbor and most of the older IPFS stack speaks), for handoff to
// tooling built on that generation of IPLD. The node's CID matches v's
// Fingerprint only when the two encoders produce the same bytes for v.
func ToLegacyIPLDNode(v interface{}) (format.Node, error) {
	return cbornode.WrapObject(v, mhSHA2256, -1)
}

// ToIPLDNode decodes v's canonical CBOR encoding into a go-ipld-prime
// ipld.Node (the current generation of the IPLD data model), for handoff to
// DAG walkers and content-addressed stores built on go-ipld-prime. This is
// export only: there is no corresponding "build a collection from an
// ipld.Node" entry point, and using it does not imply on-disk or networked
// persistence (that remains a non-goal of every collection in this module).
func ToIPLDNode(v interface{}) (ipld.Node, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	nb := basicnode.Prototype.Any.NewBuilder()
	if err := dagcbor.Decode(nb, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return nb.Build(), nil
}
