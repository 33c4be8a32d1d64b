// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
)

// ComputeAuthoritySetCommitment chains the public keys into a single hash:
// the first key is hashed on its own, then each following key is hashed
// together with the previous result. The order of the keys matters.
func ComputeAuthoritySetCommitment(pubkeys []ed25519.PublicKeyBytes) (common.Hash, error) {
	if len(pubkeys) == 0 {
		return common.Hash{}, ErrEmptyAuthoritySet
	}

	commitment := common.Sha256(pubkeys[0][:])
	input := make([]byte, HashLength+PublicKeyLength)
	for _, pubkey := range pubkeys[1:] {
		copy(input, commitment[:])
		copy(input[HashLength:], pubkey[:])
		commitment = common.Sha256(input)
	}

	return commitment, nil
}

// MustComputeAuthoritySetCommitment is ComputeAuthoritySetCommitment which panics on error.
func MustComputeAuthoritySetCommitment(pubkeys []ed25519.PublicKeyBytes) common.Hash {
	commitment, err := ComputeAuthoritySetCommitment(pubkeys)
	if err != nil {
		panic(err)
	}
	return commitment
}

// VerifyEncodedValidators checks that header holds, from offset start, each public key
// followed by a weight of ValidatorWeight, and that the list is followed by a delay of
// ExpectedDelay.
func VerifyEncodedValidators(header []byte, start int, pubkeys []ed25519.PublicKeyBytes) error {
	if start < 0 || start > len(header) {
		return fmt.Errorf("%w: validator list offset %d is outside header of %d bytes",
			ErrMalformedHeader, start, len(header))
	}

	needed := len(pubkeys)*ValidatorLength + DelayLength
	if len(header)-start < needed {
		return fmt.Errorf("%w: validator list needs %d bytes from offset %d, header has %d bytes",
			ErrMalformedHeader, needed, start, len(header))
	}

	cursor := start
	for i, pubkey := range pubkeys {
		extracted := header[cursor : cursor+PublicKeyLength]
		if !bytes.Equal(extracted, pubkey[:]) {
			return fmt.Errorf("%w: public key at index %d is 0x%x, expected %s",
				ErrValidatorMismatch, i, extracted, pubkey)
		}

		weight := binary.LittleEndian.Uint64(header[cursor+PublicKeyLength : cursor+ValidatorLength])
		if weight != ValidatorWeight {
			return fmt.Errorf("%w: weight at index %d is %d, expected %d",
				ErrValidatorMismatch, i, weight, ValidatorWeight)
		}

		cursor += ValidatorLength
	}

	delay := binary.LittleEndian.Uint32(header[cursor : cursor+DelayLength])
	if delay != ExpectedDelay {
		return fmt.Errorf("%w: delay is %d, expected %d", ErrValidatorSetMismatch, delay, ExpectedDelay)
	}

	return nil
}

func checkUniqueAuthorities(pubkeys []ed25519.PublicKeyBytes) error {
	seen := make(map[ed25519.PublicKeyBytes]int, len(pubkeys))
	for i, pubkey := range pubkeys {
		if first, ok := seen[pubkey]; ok {
			return fmt.Errorf("%w: %s at indexes %d and %d", ErrDuplicateAuthority, pubkey, first, i)
		}
		seen[pubkey] = i
	}
	return nil
}
