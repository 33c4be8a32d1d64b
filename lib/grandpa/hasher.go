// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"github.com/ChainSafe/grandpa-verifier/lib/common"
)

// HeaderHasher hashes encoded block headers.
type HeaderHasher interface {
	HashEncodedHeader(encoded []byte) common.Hash
}

// BlakeTwo256Hasher hashes encoded headers with blake2b-256,
// the header hash of substrate chains.
type BlakeTwo256Hasher struct{}

// HashEncodedHeader returns the blake2b-256 hash of the encoded header.
func (BlakeTwo256Hasher) HashEncodedHeader(encoded []byte) common.Hash {
	return common.MustBlake2bHash(encoded)
}
