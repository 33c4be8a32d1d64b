// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-verifier/pkg/scale"
)

// Subround is the stage of a grandpa round a vote belongs to
type Subround byte

var (
	prevote         Subround = 0
	precommit       Subround = 1
	primaryProposal Subround = 2
)

func (s Subround) String() string {
	switch s {
	case prevote:
		return "prevote"
	case precommit:
		return "precommit"
	case primaryProposal:
		return "primaryProposal"
	}

	return "unknown"
}

// Vote represents a vote for a block with the given hash and number
type Vote struct {
	Hash   common.Hash
	Number uint32
}

// FullVote represents a vote with additional information about the state
// this is encoded and signed and the signature is included in SignedMessage
type FullVote struct {
	Stage Subround
	Vote  Vote
	Round uint64
	SetID uint64
}

// Precommit is a signed precommit vote listed in a justification
type Precommit struct {
	TargetHash   common.Hash
	TargetNumber uint32
	PublicKey    ed25519.PublicKeyBytes
	Signature    ed25519.SignatureBytes
}

// PrecommitMessage returns the encoded message an authority signs when
// precommitting to p in the given round and set.
func PrecommitMessage(p Precommit, round, setID uint64) ([]byte, error) {
	msg, err := scale.Marshal(FullVote{
		Stage: precommit,
		Vote: Vote{
			Hash:   p.TargetHash,
			Number: p.TargetNumber,
		},
		Round: round,
		SetID: setID,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding precommit message: %w", err)
	}
	return msg, nil
}

// DecodedPrecommit holds the fields of an encoded precommit message
type DecodedPrecommit struct {
	TargetHash     common.Hash
	TargetNumber   uint32
	Round          uint64
	AuthoritySetID uint64
}

// DecodeAndVerifyPrecommit decodes an encoded precommit message. The input must be
// exactly PrecommitLength bytes long and start with the precommit stage byte.
func DecodeAndVerifyPrecommit(b []byte) (DecodedPrecommit, error) {
	if len(b) != PrecommitLength {
		return DecodedPrecommit{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrMalformedPrecommit, PrecommitLength, len(b))
	}

	if Subround(b[0]) != precommit {
		return DecodedPrecommit{}, fmt.Errorf("%w: stage is %s (0x%02x)",
			ErrMalformedPrecommit, Subround(b[0]), b[0])
	}

	var vote FullVote
	err := scale.Unmarshal(b, &vote)
	if err != nil {
		return DecodedPrecommit{}, fmt.Errorf("%w: %s", ErrMalformedPrecommit, err)
	}

	return DecodedPrecommit{
		TargetHash:     vote.Vote.Hash,
		TargetNumber:   vote.Vote.Number,
		Round:          vote.Round,
		AuthoritySetID: vote.SetID,
	}, nil
}

// verifyPrecommitSignature checks the precommit signature over its message in the given round and set.
func verifyPrecommitSignature(p Precommit, round, setID uint64) error {
	msg, err := PrecommitMessage(p, round, setID)
	if err != nil {
		return err
	}

	return ed25519.VerifySignature(p.PublicKey, msg, p.Signature)
}
