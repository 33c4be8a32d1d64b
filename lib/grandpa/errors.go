// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"errors"
)

// ErrAuthoritySetMismatch is returned when a justification's authority set id or
// commitment differs from the expected one
var ErrAuthoritySetMismatch = errors.New("authority set mismatch")

// ErrInsufficientSignatures is returned when the confirmed signers do not form a strict
// supermajority of the authority set
var ErrInsufficientSignatures = errors.New("less than 2/3 of signatures are verified")

// ErrDuplicateAuthority is returned when the authority set lists the same public key twice
var ErrDuplicateAuthority = errors.New("duplicate authority in set")

// ErrEmptyAuthoritySet is returned when computing the commitment of no public keys
var ErrEmptyAuthoritySet = errors.New("authority set is empty")

// ErrMalformedPrecommit is returned when an encoded precommit message has the wrong size or stage
var ErrMalformedPrecommit = errors.New("malformed precommit")

// ErrMalformedInteger is returned when a compact integer cannot be decoded
var ErrMalformedInteger = errors.New("malformed compact integer")

// ErrMalformedHeader is returned when encoded header bytes are too short for the data read from them
var ErrMalformedHeader = errors.New("malformed header")

// ErrValidatorMismatch is returned when an encoded validator public key or weight differs
// from the expected one
var ErrValidatorMismatch = errors.New("validator mismatch")

// ErrValidatorSetMismatch is returned when the delay following an encoded validator list is not zero
var ErrValidatorSetMismatch = errors.New("validator set delay mismatch")
