// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-verifier/lib/grandpa"
)

var errInvalidLength = errors.New("invalid length")

// justificationJSON is the JSON file format of a justification.
// Byte fields are 0x prefixed hex strings.
type justificationJSON struct {
	BlockHash               common.Hash     `json:"blockHash"`
	Round                   uint64          `json:"round"`
	AuthoritySetID          uint64          `json:"authoritySetId"`
	CurrentAuthoritySetHash common.Hash     `json:"currentAuthoritySetHash"`
	Precommits              []precommitJSON `json:"precommits"`
	AncestriesEncoded       []string        `json:"ancestriesEncoded"`
	ValsetPubkeys           []string        `json:"valsetPubkeys"`
}

type precommitJSON struct {
	TargetHash   common.Hash `json:"targetHash"`
	TargetNumber uint32      `json:"targetNumber"`
	PublicKey    string      `json:"publicKey"`
	Signature    string      `json:"signature"`
}

func readJustification(path string) (j grandpa.CircuitJustification, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return j, fmt.Errorf("reading justification: %w", err)
	}

	var dto justificationJSON
	err = json.Unmarshal(raw, &dto)
	if err != nil {
		return j, fmt.Errorf("decoding justification json: %w", err)
	}

	return dto.toJustification()
}

func (dto justificationJSON) toJustification() (j grandpa.CircuitJustification, err error) {
	j = grandpa.CircuitJustification{
		BlockHash:               dto.BlockHash,
		Round:                   dto.Round,
		AuthoritySetID:          dto.AuthoritySetID,
		CurrentAuthoritySetHash: dto.CurrentAuthoritySetHash,
		Precommits:              make([]grandpa.Precommit, len(dto.Precommits)),
		AncestriesEncoded:       make([][]byte, len(dto.AncestriesEncoded)),
	}

	for i, p := range dto.Precommits {
		j.Precommits[i], err = p.toPrecommit()
		if err != nil {
			return grandpa.CircuitJustification{}, fmt.Errorf("precommit %d: %w", i, err)
		}
	}

	for i, encoded := range dto.AncestriesEncoded {
		j.AncestriesEncoded[i], err = common.HexToBytes(encoded)
		if err != nil {
			return grandpa.CircuitJustification{}, fmt.Errorf("ancestry header %d: %w", i, err)
		}
	}

	j.ValsetPubkeys, err = parsePublicKeys(dto.ValsetPubkeys)
	if err != nil {
		return grandpa.CircuitJustification{}, err
	}

	return j, nil
}

func (p precommitJSON) toPrecommit() (precommit grandpa.Precommit, err error) {
	precommit.TargetHash = p.TargetHash
	precommit.TargetNumber = p.TargetNumber

	pubkey, err := parsePublicKey(p.PublicKey)
	if err != nil {
		return precommit, err
	}
	precommit.PublicKey = pubkey

	sig, err := common.HexToBytes(p.Signature)
	if err != nil {
		return precommit, fmt.Errorf("signature: %w", err)
	}
	if len(sig) != ed25519.SignatureLength {
		return precommit, fmt.Errorf("signature: %w: %d bytes instead of %d",
			errInvalidLength, len(sig), ed25519.SignatureLength)
	}
	precommit.Signature = ed25519.NewSignatureBytes(sig)

	return precommit, nil
}

func parsePublicKey(s string) (pubkey ed25519.PublicKeyBytes, err error) {
	b, err := common.HexToBytes(s)
	if err != nil {
		return pubkey, fmt.Errorf("public key: %w", err)
	}
	if len(b) != ed25519.PublicKeyLength {
		return pubkey, fmt.Errorf("public key: %w: %d bytes instead of %d",
			errInvalidLength, len(b), ed25519.PublicKeyLength)
	}
	copy(pubkey[:], b)
	return pubkey, nil
}

func parsePublicKeys(strs []string) ([]ed25519.PublicKeyBytes, error) {
	pubkeys := make([]ed25519.PublicKeyBytes, len(strs))
	for i, s := range strs {
		pubkey, err := parsePublicKey(s)
		if err != nil {
			return nil, fmt.Errorf("authority %d: %w", i, err)
		}
		pubkeys[i] = pubkey
	}
	return pubkeys, nil
}
