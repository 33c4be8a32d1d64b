// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
)

const (
	// HashLength is the length of a block hash.
	HashLength = common.HashLength
	// PublicKeyLength is the length of an authority public key.
	PublicKeyLength = ed25519.PublicKeyLength
	// WeightLength is the length of an encoded authority weight.
	WeightLength = 8
	// ValidatorLength is the length of an encoded authority: public key then weight.
	ValidatorLength = PublicKeyLength + WeightLength
	// DelayLength is the length of the delay following an encoded authority list.
	DelayLength = 4
	// PrecommitLength is the length of an encoded precommit message:
	// stage, target hash, target number, round and set id.
	PrecommitLength = 1 + HashLength + 4 + 8 + 8
)

const (
	// ValidatorWeight is the voting weight every authority must carry.
	ValidatorWeight uint64 = 1
	// ExpectedDelay is the only authority set change delay accepted.
	ExpectedDelay uint32 = 0
)

// MaxAncestryDepth is the number of parent links ConfirmAncestry follows
// before giving up.
const MaxAncestryDepth = 1 << 16
