// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

// Justification verification results.
const (
	ResultAccepted               = "accepted"
	ResultAuthoritySetMismatch   = "authority_set_mismatch"
	ResultDuplicateAuthority     = "duplicate_authority"
	ResultMalformed              = "malformed"
	ResultInvalidSignature       = "invalid_signature"
	ResultInsufficientSignatures = "insufficient_signatures"
)

// Precommit outcomes within a justification.
const (
	OutcomeCounted          = "counted"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeNotDescendant    = "not_descendant"
	OutcomeNotInSet         = "not_in_set"
	OutcomeDuplicateSigner  = "duplicate_signer"
)

// Recorder records justification verification events.
type Recorder interface {
	JustificationVerified(result string)
	PrecommitChecked(outcome string)
}

// Noop is a Recorder which discards every event.
type Noop struct{}

// JustificationVerified does nothing.
func (Noop) JustificationVerified(string) {}

// PrecommitChecked does nothing.
func (Noop) PrecommitChecked(string) {}
