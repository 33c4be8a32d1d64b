// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ChainSafe/grandpa-verifier/dot/types"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	"github.com/stretchr/testify/require"
)

const (
	testRound uint64 = 77
	testSetID uint64 = 3
)

var testBlockHash = common.MustHexToHash("0x6c3d20e5a3a1f0b4e5d5d4b7a7f1e6b8f6f1d0b1a2c3d4e5f60718293a4b5c6d")

func newTestKeypairs(t *testing.T, n int) []*ed25519.Keypair {
	t.Helper()

	keypairs := make([]*ed25519.Keypair, n)
	for i := range keypairs {
		kp, err := ed25519.NewKeypairFromSeed(bytes.Repeat([]byte{byte(i + 1)}, ed25519.SeedLength))
		require.NoError(t, err)
		keypairs[i] = kp
	}
	return keypairs
}

func publicKeys(keypairs []*ed25519.Keypair) []ed25519.PublicKeyBytes {
	pubkeys := make([]ed25519.PublicKeyBytes, len(keypairs))
	for i, kp := range keypairs {
		pubkeys[i] = kp.Public().AsBytes()
	}
	return pubkeys
}

func signPrecommit(t *testing.T, kp *ed25519.Keypair, target common.Hash, number uint32,
	round, setID uint64) Precommit {
	t.Helper()

	precommit := Precommit{
		TargetHash:   target,
		TargetNumber: number,
		PublicKey:    kp.Public().AsBytes(),
	}

	msg, err := PrecommitMessage(precommit, round, setID)
	require.NoError(t, err)

	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	precommit.Signature = ed25519.NewSignatureBytes(sig)

	return precommit
}

// newTestChain returns length encoded headers descending from root and their hashes,
// the last hash being the tip of the chain.
func newTestChain(t *testing.T, root common.Hash, length int) (encoded [][]byte, hashes []common.Hash) {
	t.Helper()

	parent := root
	for i := 0; i < length; i++ {
		header, err := types.NewHeader(parent, common.Hash{byte(i)}, common.Hash{}, big.NewInt(int64(i+1)), types.Digest{})
		require.NoError(t, err)

		encoded = append(encoded, header.MustEncode())
		hashes = append(hashes, header.Hash())
		parent = header.Hash()
	}
	return encoded, hashes
}

// newTestJustification returns a justification for testBlockHash signed by the
// first signers keypairs, with precommits targeting the tip of a three block chain.
func newTestJustification(t *testing.T, keypairs []*ed25519.Keypair, signers int) CircuitJustification {
	t.Helper()

	ancestries, hashes := newTestChain(t, testBlockHash, 3)
	tip := hashes[len(hashes)-1]

	precommits := make([]Precommit, signers)
	for i := range precommits {
		precommits[i] = signPrecommit(t, keypairs[i], tip, 103, testRound, testSetID)
	}

	pubkeys := publicKeys(keypairs)
	return CircuitJustification{
		BlockHash:               testBlockHash,
		Round:                   testRound,
		AuthoritySetID:          testSetID,
		CurrentAuthoritySetHash: MustComputeAuthoritySetCommitment(pubkeys),
		Precommits:              precommits,
		AncestriesEncoded:       ancestries,
		ValsetPubkeys:           pubkeys,
	}
}
