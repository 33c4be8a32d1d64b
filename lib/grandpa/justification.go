// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/grandpa-verifier/internal/log"
	"github.com/ChainSafe/grandpa-verifier/internal/metrics"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "grandpa"))

// CircuitJustification is a grandpa finality proof for BlockHash: the precommits
// signed by the authority set, the encoded headers linking the precommit targets to
// BlockHash and the public keys of the authority set.
type CircuitJustification struct {
	BlockHash               common.Hash
	Round                   uint64
	AuthoritySetID          uint64
	CurrentAuthoritySetHash common.Hash
	Precommits              []Precommit
	AncestriesEncoded       [][]byte
	ValsetPubkeys           []ed25519.PublicKeyBytes
}

// Option configures a Verifier.
type Option func(v *Verifier)

// WithHeaderHasher sets the hasher used to key ancestry headers.
// It defaults to BlakeTwo256Hasher.
func WithHeaderHasher(hasher HeaderHasher) Option {
	return func(v *Verifier) {
		v.hasher = hasher
	}
}

// WithLogger sets the logger of the verifier.
func WithLogger(l *log.Logger) Option {
	return func(v *Verifier) {
		v.logger = l
	}
}

// WithMetrics sets the recorder of verification events.
// It defaults to metrics.Noop.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(v *Verifier) {
		v.metrics = recorder
	}
}

// WithMaxAncestryDepth sets the number of parent links followed from a precommit
// target. Non positive values keep the default MaxAncestryDepth.
func WithMaxAncestryDepth(depth int) Option {
	return func(v *Verifier) {
		if depth > 0 {
			v.maxAncestryDepth = depth
		}
	}
}

// Verifier verifies justifications. It is safe for concurrent use.
type Verifier struct {
	hasher           HeaderHasher
	logger           *log.Logger
	metrics          metrics.Recorder
	maxAncestryDepth int
}

// NewVerifier creates a verifier with the options given.
func NewVerifier(options ...Option) *Verifier {
	v := &Verifier{
		hasher:           BlakeTwo256Hasher{},
		logger:           logger,
		metrics:          metrics.Noop{},
		maxAncestryDepth: MaxAncestryDepth,
	}

	for _, option := range options {
		option(v)
	}

	return v
}

var defaultVerifier = NewVerifier()

// VerifyJustification verifies j with the default verifier.
func VerifyJustification(j CircuitJustification, setID uint64, setHash common.Hash) error {
	return defaultVerifier.Verify(j, setID, setHash)
}

// Verify checks that j was produced by the authority set with the given id and commitment
// and that a strict supermajority of that set precommitted to descendants of j.BlockHash.
// Every precommit signature must be valid, including precommits which do not count.
func (v *Verifier) Verify(j CircuitJustification, setID uint64, setHash common.Hash) error {
	result, err := v.verify(j, setID, setHash)
	v.metrics.JustificationVerified(result)

	if err != nil {
		v.logger.Warnf("rejected justification for block %s in round %d of set %d: %s",
			j.BlockHash, j.Round, j.AuthoritySetID, err)
		return err
	}

	v.logger.Debugf("accepted justification for block %s in round %d of set %d",
		j.BlockHash, j.Round, j.AuthoritySetID)
	return nil
}

func (v *Verifier) verify(j CircuitJustification, setID uint64, setHash common.Hash) (result string, err error) {
	if j.CurrentAuthoritySetHash != setHash {
		return metrics.ResultAuthoritySetMismatch, fmt.Errorf("%w: set hash is %s, expected %s",
			ErrAuthoritySetMismatch, j.CurrentAuthoritySetHash, setHash)
	}

	if j.AuthoritySetID != setID {
		return metrics.ResultAuthoritySetMismatch, fmt.Errorf("%w: set id is %d, expected %d",
			ErrAuthoritySetMismatch, j.AuthoritySetID, setID)
	}

	err = checkUniqueAuthorities(j.ValsetPubkeys)
	if err != nil {
		return metrics.ResultDuplicateAuthority, err
	}

	ancestry, err := BuildAncestryMap(j.AncestriesEncoded, v.hasher)
	if err != nil {
		return metrics.ResultMalformed, err
	}

	authorities := make(map[ed25519.PublicKeyBytes]struct{}, len(j.ValsetPubkeys))
	for _, pubkey := range j.ValsetPubkeys {
		authorities[pubkey] = struct{}{}
	}

	signers := make(map[ed25519.PublicKeyBytes]struct{}, len(j.Precommits))
	for i, precommit := range j.Precommits {
		err = verifyPrecommitSignature(precommit, j.Round, j.AuthoritySetID)
		if err != nil {
			v.metrics.PrecommitChecked(metrics.OutcomeInvalidSignature)
			return metrics.ResultInvalidSignature, fmt.Errorf("precommit %d for block %s: %w",
				i, precommit.TargetHash, err)
		}

		outcome := v.classifyPrecommit(precommit, j.BlockHash, ancestry, authorities, signers)
		v.metrics.PrecommitChecked(outcome)
		if outcome != metrics.OutcomeCounted {
			v.logger.Debugf("precommit %d from %s for block %s not counted: %s",
				i, precommit.PublicKey, precommit.TargetHash, outcome)
			continue
		}
		signers[precommit.PublicKey] = struct{}{}
	}

	if !IsSupermajority(uint64(len(signers)), uint64(len(j.ValsetPubkeys))) {
		return metrics.ResultInsufficientSignatures, fmt.Errorf("%w: %d of %d authorities confirmed",
			ErrInsufficientSignatures, len(signers), len(j.ValsetPubkeys))
	}

	return metrics.ResultAccepted, nil
}

// classifyPrecommit returns metrics.OutcomeCounted if the precommit targets a descendant
// of block and comes from an authority not counted yet.
func (v *Verifier) classifyPrecommit(precommit Precommit, block common.Hash,
	ancestry map[common.Hash]common.Hash, authorities, signers map[ed25519.PublicKeyBytes]struct{}) string {
	if !confirmAncestry(precommit.TargetHash, block, ancestry, v.maxAncestryDepth) {
		return metrics.OutcomeNotDescendant
	}

	if _, ok := authorities[precommit.PublicKey]; !ok {
		return metrics.OutcomeNotInSet
	}

	if _, ok := signers[precommit.PublicKey]; ok {
		return metrics.OutcomeDuplicateSigner
	}

	return metrics.OutcomeCounted
}
