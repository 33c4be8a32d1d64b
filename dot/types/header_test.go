// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"math/big"
	"testing"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	t.Parallel()

	_, err := NewHeader(common.Hash{}, common.Hash{}, common.Hash{}, nil, nil)
	assert.ErrorIs(t, err, errNilBlockNumber)

	header, err := NewHeader(common.Hash{1}, common.Hash{2}, common.Hash{3}, big.NewInt(1), Digest{})
	require.NoError(t, err)
	assert.False(t, header.Hash().IsEmpty())
}

func TestHeader_Encode(t *testing.T) {
	t.Parallel()

	parentHash := common.MustHexToHash("0x4545454545454545454545454545454545454545454545454545454545454545")
	stateRoot := common.MustHexToHash("0xb3266de137d20a5d0ff3a6401eb57127525fd9b2693701f0bf5a8a853fa3ebe0")
	extrinsicsRoot := common.MustHexToHash("0x03170a2e7597b7b7e3d84c05391d139a62b157e78786d8c082f29dcf4c111314")

	header := &Header{
		ParentHash:     parentHash,
		Number:         big.NewInt(1),
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest: Digest{
			{
				Type:              PreRuntimeDigestType,
				ConsensusEngineID: BabeEngineID,
				Data:              []byte{1, 2},
			},
		},
	}

	enc, err := header.Encode()
	require.NoError(t, err)

	expected := append([]byte{}, parentHash[:]...)
	expected = append(expected, 0x04)
	expected = append(expected, stateRoot[:]...)
	expected = append(expected, extrinsicsRoot[:]...)
	expected = append(expected, 0x04, 0x06, 'B', 'A', 'B', 'E', 0x08, 1, 2)
	assert.Equal(t, expected, enc)

	assert.Equal(t, parentHash[:], enc[:common.HashLength])
	assert.Equal(t, common.MustBlake2bHash(enc), header.Hash())
}

func TestHeader_EncodeNilNumber(t *testing.T) {
	t.Parallel()

	_, err := (&Header{}).Encode()
	assert.ErrorIs(t, err, errNilBlockNumber)
}

func TestHeader_HashCached(t *testing.T) {
	t.Parallel()

	header := NewEmptyHeader()
	first := header.Hash()

	header.Number = big.NewInt(2)
	assert.Equal(t, first, header.Hash())
}

func TestDigestItem_String(t *testing.T) {
	t.Parallel()

	item := DigestItem{Type: SealDigestType, ConsensusEngineID: GrandpaEngineID, Data: []byte{0xff}}
	assert.Equal(t, "Seal{ConsensusEngineID=FRNK Data=0xff}", item.String())
	assert.Equal(t, "DigestItemType(9)", DigestItemType(9).String())
}
