// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invalidPointBytes returns the first y coordinate encoding which does not decode to a curve point.
func invalidPointBytes(t *testing.T) (b PublicKeyBytes) {
	t.Helper()

	for y := uint64(2); y < 1000; y++ {
		var candidate PublicKeyBytes
		binary.LittleEndian.PutUint64(candidate[:8], y)
		_, err := new(edwards25519.Point).SetBytes(candidate[:])
		if err != nil {
			return candidate
		}
	}
	t.Fatal("no invalid point encoding found")
	return b
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	msg := []byte("helloworld")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)

	ok, err := kp.Public().Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = kp.Public().Verify([]byte("other"), sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNewKeypairFromSeed(t *testing.T) {
	t.Parallel()

	// RFC 8032 section 7.1, test 1
	seed := []byte{
		0x9d, 0x61, 0xb1, 0x9d, 0xef, 0xfd, 0x5a, 0x60, 0xba, 0x84, 0x4a, 0xf4, 0x92, 0xec, 0x2c, 0xc4,
		0x44, 0x49, 0xc5, 0x69, 0x7b, 0x32, 0x69, 0x19, 0x70, 0x3b, 0xac, 0x03, 0x1c, 0xae, 0x7f, 0x60,
	}
	kp, err := NewKeypairFromSeed(seed)
	require.NoError(t, err)

	assert.Equal(t, "0xd75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		kp.Public().AsBytes().String())

	_, err = NewKeypairFromSeed(seed[:31])
	assert.ErrorIs(t, err, errInvalidSeedLength)
}

func TestNewPublicKey(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	pub, err := NewPublicKey(kp.Public().Encode())
	require.NoError(t, err)
	assert.Equal(t, kp.Public().AsBytes(), pub.AsBytes())

	_, err = NewPublicKey([]byte{1, 2})
	assert.ErrorIs(t, err, errInvalidKeyLength)

	invalid := invalidPointBytes(t)
	_, err = NewPublicKey(invalid[:])
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	keypair, err := GenerateKeypair()
	require.NoError(t, err)

	message := []byte("Hello world!")
	signature, err := keypair.Sign(message)
	require.NoError(t, err)
	sig := NewSignatureBytes(signature)

	corrupted := sig
	corrupted[0] ^= 0x01

	invalidKey := invalidPointBytes(t)

	testCases := map[string]struct {
		publicKey  PublicKeyBytes
		signature  SignatureBytes
		message    []byte
		errWrapped error
		errMessage string
	}{
		"success": {
			publicKey: keypair.Public().AsBytes(),
			signature: sig,
			message:   message,
		},
		"invalid public key": {
			publicKey:  invalidKey,
			signature:  sig,
			message:    message,
			errWrapped: ErrInvalidPublicKey,
		},
		"corrupted signature": {
			publicKey:  keypair.Public().AsBytes(),
			signature:  corrupted,
			message:    message,
			errWrapped: ErrInvalidSignature,
			errMessage: fmt.Sprintf("ed25519: signature verification failed: for message 0x%x, "+
				"signature 0x%x and public key 0x%x", message, corrupted[:], keypair.Public().Encode()),
		},
		"wrong message": {
			publicKey:  keypair.Public().AsBytes(),
			signature:  sig,
			message:    []byte("Hello world?"),
			errWrapped: ErrInvalidSignature,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := VerifySignature(testCase.publicKey, testCase.message, testCase.signature)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

// orderTwoPoint is the encoding of (0, -1), the point of order 2.
func orderTwoPoint(t *testing.T) *edwards25519.Point {
	t.Helper()

	encoded := bytes.Repeat([]byte{0xff}, 32)
	encoded[0] = 0xec
	encoded[31] = 0x7f
	point, err := new(edwards25519.Point).SetBytes(encoded)
	require.NoError(t, err)
	return point
}

// signWithTorsionKey signs msg for the public key [a]B + T, where a is derived from
// seed and T has order 2. Only cofactored verification accepts the signature.
func signWithTorsionKey(t *testing.T, seed, msg []byte) (pub PublicKeyBytes, sig SignatureBytes) {
	t.Helper()

	expanded := sha512.Sum512(seed)
	a, err := edwards25519.NewScalar().SetBytesWithClamping(expanded[:32])
	require.NoError(t, err)

	A := new(edwards25519.Point).ScalarBaseMult(a)
	A.Add(A, orderTwoPoint(t))
	copy(pub[:], A.Bytes())

	nonce := sha512.Sum512(append(expanded[32:], msg...))
	r, err := edwards25519.NewScalar().SetUniformBytes(nonce[:])
	require.NoError(t, err)
	R := new(edwards25519.Point).ScalarBaseMult(r)

	h := sha512.New()
	h.Write(R.Bytes())
	h.Write(pub[:])
	h.Write(msg)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	require.NoError(t, err)

	S := edwards25519.NewScalar().MultiplyAdd(k, a, r)
	copy(sig[:32], R.Bytes())
	copy(sig[32:], S.Bytes())
	return pub, sig
}

func TestPublicKey_Verify_cofactored(t *testing.T) {
	t.Parallel()

	msg := []byte("precommit")
	pub, sig := signWithTorsionKey(t, bytes.Repeat([]byte{7}, SeedLength), msg)

	err := VerifySignature(pub, msg, sig)
	assert.NoError(t, err)

	err = VerifySignature(pub, []byte("prevote"), sig)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestPublicKey_Verify_nonCanonicalScalar(t *testing.T) {
	t.Parallel()

	kp, err := NewKeypairFromSeed(bytes.Repeat([]byte{3}, SeedLength))
	require.NoError(t, err)

	msg := []byte("precommit")
	signature, err := kp.Sign(msg)
	require.NoError(t, err)

	// S >= the group order
	signature[63] |= 0xf0

	ok, err := kp.Public().Verify(msg, signature)
	require.NoError(t, err)
	assert.False(t, ok)
}
