// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	// PublicKeyLength is the length of an ed25519 public key in bytes
	PublicKeyLength = ed25519.PublicKeySize
	// SignatureLength is the length of an ed25519 signature in bytes
	SignatureLength = ed25519.SignatureSize
	// SeedLength is the length of an ed25519 private key seed in bytes
	SeedLength = ed25519.SeedSize
)

var (
	// ErrInvalidPublicKey is returned when public key bytes are not a point on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidSignature is returned when a signature does not verify.
	ErrInvalidSignature = errors.New("signature verification failed")

	errInvalidKeyLength = errors.New("cannot create public key: input is not 32 bytes")
	errInvalidSeedLength = errors.New("cannot create keypair: seed is not 32 bytes")
)

// PublicKeyBytes is an encoded ed25519 public key
type PublicKeyBytes [PublicKeyLength]byte

// String returns the 0x prefixed hex encoding of the key
func (b PublicKeyBytes) String() string {
	return fmt.Sprintf("0x%x", b[:])
}

// SignatureBytes is an encoded ed25519 signature
type SignatureBytes [SignatureLength]byte

// NewSignatureBytes returns a SignatureBytes given a byte slice
func NewSignatureBytes(in []byte) (sig SignatureBytes) {
	copy(sig[:], in)
	return sig
}

// PublicKey is an ed25519 public key which decodes to a valid curve point
type PublicKey ed25519.PublicKey

// NewPublicKey returns an ed25519 public key from 32 byte input.
// The bytes must decode to a point on the curve.
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, errInvalidKeyLength
	}

	_, err := new(edwards25519.Point).SetBytes(in)
	if err != nil {
		return nil, fmt.Errorf("%w: 0x%x: %s", ErrInvalidPublicKey, in, err)
	}

	pub := make(PublicKey, PublicKeyLength)
	copy(pub, in)
	return &pub, nil
}

// Encode returns the encoded public key
func (k *PublicKey) Encode() []byte {
	enc := make([]byte, PublicKeyLength)
	copy(enc, *k)
	return enc
}

// AsBytes returns the public key as PublicKeyBytes
func (k *PublicKey) AsBytes() (b PublicKeyBytes) {
	copy(b[:], *k)
	return b
}

// Verify checks that sig is a valid signature of msg by this key with the
// cofactored ZIP-215 equation [8][S]B = [8]R + [8][k]A. The key and R may use
// non canonical encodings and may have small order components. S must be
// canonical.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, nil
	}

	A, err := new(edwards25519.Point).SetBytes(*k)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}

	R, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return false, nil
	}

	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false, nil
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(*k)
	h.Write(msg)
	digest := h.Sum(nil)
	kScalar, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		return false, err
	}

	// [S]B - [k]A - R
	minusA := new(edwards25519.Point).Negate(A)
	check := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(kScalar, minusA, S)
	check.Subtract(check, R)
	check.MultByCofactor(check)

	return check.Equal(edwards25519.NewIdentityPoint()) == 1, nil
}

// VerifySignature verifies sig over msg against the public key pub. It returns
// ErrInvalidPublicKey if pub is not a curve point and ErrInvalidSignature if the
// signature does not verify.
func VerifySignature(pub PublicKeyBytes, msg []byte, sig SignatureBytes) error {
	pk, err := NewPublicKey(pub[:])
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	}

	ok, err := pk.Verify(msg, sig[:])
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	}
	if !ok {
		return fmt.Errorf("ed25519: %w: for message 0x%x, signature 0x%x and public key 0x%x",
			ErrInvalidSignature, msg, sig[:], pub[:])
	}
	return nil
}

// Keypair is an ed25519 public and private key pair
type Keypair struct {
	public  *PublicKey
	private ed25519.PrivateKey
}

// GenerateKeypair returns a new keypair from a random seed
func GenerateKeypair() (*Keypair, error) {
	seed := make([]byte, SeedLength)
	_, err := rand.Read(seed)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed)
}

// NewKeypairFromSeed derives a keypair from a 32 byte seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, errInvalidSeedLength
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := PublicKey(priv.Public().(ed25519.PublicKey))
	return &Keypair{
		public:  &pub,
		private: priv,
	}, nil
}

// Sign uses the keypair to sign the message
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(kp.private, msg), nil
}

// Public returns the keypair's public key
func (kp *Keypair) Public() *PublicKey {
	return kp.public
}
