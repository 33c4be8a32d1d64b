// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/pkg/scale"
)

var errNilBlockNumber = errors.New("cannot have nil block number")

// Header is a state block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         *big.Int    `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
	hash           common.Hash
}

// NewHeader creates a new block header and sets its hash field
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash, number *big.Int, digest Digest) (*Header, error) {
	if number == nil {
		// Hash() will panic if number is nil
		return nil, errNilBlockNumber
	}

	bh := &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}

	bh.Hash()
	return bh, nil
}

// NewEmptyHeader returns a new header with all zero values
func NewEmptyHeader() *Header {
	return &Header{
		Number: big.NewInt(0),
		Digest: Digest{},
	}
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest, bh.Hash())
}

// Hash returns the hash of the block header
// If the internal hash field is nil, it hashes the block and sets the hash field.
// If hashing the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	if bh.hash.IsEmpty() {
		bh.hash = common.MustBlake2bHash(bh.MustEncode())
	}

	return bh.hash
}

// Encode returns the SCALE encoding of a header. The parent hash is always the
// first 32 bytes of the encoding.
func (bh *Header) Encode() ([]byte, error) {
	if bh.Number == nil {
		return nil, errNilBlockNumber
	}

	enc, err := scale.Marshal(*bh)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	return enc, nil
}

// MustEncode returns the SCALE encoded header and panics if it fails to encode
func (bh *Header) MustEncode() []byte {
	enc, err := bh.Encode()
	if err != nil {
		panic(err)
	}
	return enc
}
