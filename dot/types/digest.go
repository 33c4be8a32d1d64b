// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/grandpa-verifier/pkg/scale"
)

// ConsensusEngineID is a 4-character identifier of a consensus engine
type ConsensusEngineID [4]byte

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// GrandpaEngineID is the hard-coded grandpa ID
var GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

// DigestItemType is the index of a digest item variant
type DigestItemType byte

// Digest item variants carrying an engine id and opaque payload.
const (
	ConsensusDigestType  DigestItemType = 4
	SealDigestType       DigestItemType = 5
	PreRuntimeDigestType DigestItemType = 6
)

func (t DigestItemType) String() string {
	switch t {
	case ConsensusDigestType:
		return "Consensus"
	case SealDigestType:
		return "Seal"
	case PreRuntimeDigestType:
		return "PreRuntime"
	default:
		return fmt.Sprintf("DigestItemType(%d)", byte(t))
	}
}

// DigestItem is a single engine tagged digest log
type DigestItem struct {
	Type              DigestItemType
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest item formatted as a string
func (d DigestItem) String() string {
	return fmt.Sprintf("%s{ConsensusEngineID=%s Data=0x%x}", d.Type, d.ConsensusEngineID.ToBytes(), d.Data)
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// Encode returns the SCALE encoded digest
func (d Digest) Encode() ([]byte, error) {
	return scale.Marshal([]DigestItem(d))
}
