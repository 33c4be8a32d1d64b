// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vote struct {
	Stage  uint8
	Hash   [32]byte
	Number uint32
	Round  uint64
	SetID  uint64
}

type tagged struct {
	Second uint16 `scale:"2"`
	First  uint8  `scale:"1"`
	Ignore uint64 `scale:"-"`
	hidden uint32
}

type delta int32

type offsets struct {
	Byte  int8
	Short int16
	Delta delta
	Long  int64
}

type nested struct {
	Name    string
	Flag    bool
	Items   []uint32
	Payload []byte
	Maybe   *uint64
}

func Test_Marshal(t *testing.T) {
	t.Parallel()

	some := uint64(7)

	testCases := map[string]struct {
		in         interface{}
		expected   []byte
		errWrapped error
		errMessage string
	}{
		"uint32": {
			in:       uint32(0x01020304),
			expected: []byte{4, 3, 2, 1},
		},
		"int16 negative": {
			in:       int16(-2),
			expected: []byte{0xfe, 0xff},
		},
		"named signed integer": {
			in:       delta(-1),
			expected: []byte{0xff, 0xff, 0xff, 0xff},
		},
		"signed struct fields": {
			in:       offsets{Byte: -2, Short: 0x0102, Delta: 3, Long: -1},
			expected: []byte{0xfe, 0x02, 0x01, 3, 0, 0, 0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
		"bytes": {
			in:       []byte{0xaa, 0xbb},
			expected: []byte{0x08, 0xaa, 0xbb},
		},
		"string": {
			in:       "abc",
			expected: []byte{0x0c, 'a', 'b', 'c'},
		},
		"big int compact": {
			in:       big.NewInt(64),
			expected: []byte{0x01, 0x01},
		},
		"tagged struct": {
			in:       tagged{Second: 0x0201, First: 9, Ignore: 1, hidden: 5},
			expected: []byte{9, 0x01, 0x02},
		},
		"nested": {
			in: nested{
				Name:    "a",
				Flag:    true,
				Items:   []uint32{1},
				Payload: []byte{2},
				Maybe:   &some,
			},
			expected: []byte{
				0x04, 'a',
				0x01,
				0x04, 1, 0, 0, 0,
				0x04, 2,
				0x01, 7, 0, 0, 0, 0, 0, 0, 0,
			},
		},
		"nil option": {
			in:       nested{},
			expected: []byte{0x00, 0x00, 0x00, 0x00, 0x00},
		},
		"platform int": {
			in:         1,
			errWrapped: ErrUnsupportedType,
			errMessage: "unsupported type: int has no fixed width, use a sized integer",
		},
		"map": {
			in:         map[string]string{},
			errWrapped: ErrUnsupportedType,
			errMessage: "unsupported type: map[string]string",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b, err := Marshal(testCase.in)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.Equal(t, testCase.expected, b)
		})
	}
}

func Test_Marshal_voteLayout(t *testing.T) {
	t.Parallel()

	v := vote{
		Stage:  1,
		Hash:   [32]byte{0xaa, 31: 0xbb},
		Number: 0x0a0b0c0d,
		Round:  2,
		SetID:  3,
	}

	b := MustMarshal(v)
	require.Len(t, b, 53)
	assert.Equal(t, byte(1), b[0])
	assert.Equal(t, v.Hash[:], b[1:33])
	assert.Equal(t, []byte{0x0d, 0x0c, 0x0b, 0x0a}, b[33:37])
	assert.Equal(t, []byte{2, 0, 0, 0, 0, 0, 0, 0}, b[37:45])
	assert.Equal(t, []byte{3, 0, 0, 0, 0, 0, 0, 0}, b[45:53])
}

func Test_Unmarshal(t *testing.T) {
	t.Parallel()

	some := uint64(7)
	in := nested{
		Name:    "grandpa",
		Flag:    true,
		Items:   []uint32{1, 1 << 20},
		Payload: []byte{1, 2, 3},
		Maybe:   &some,
	}

	var out nested
	err := Unmarshal(MustMarshal(in), &out)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	var v vote
	expected := vote{Stage: 1, Hash: [32]byte{1}, Number: 9, Round: 10, SetID: 11}
	err = Unmarshal(MustMarshal(expected), &v)
	require.NoError(t, err)
	assert.Equal(t, expected, v)

	var signed offsets
	expectedSigned := offsets{Byte: -128, Short: -300, Delta: -70000, Long: -1 << 40}
	err = Unmarshal(MustMarshal(expectedSigned), &signed)
	require.NoError(t, err)
	assert.Equal(t, expectedSigned, signed)
}

func Test_Unmarshal_errors(t *testing.T) {
	t.Parallel()

	var v vote
	err := Unmarshal(make([]byte, 52), &v)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.EqualError(t, err, "decoding field SetID: unexpected end of input: need 8 bytes at offset 45, have 7")

	err = Unmarshal([]byte{1}, v)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	var flag bool
	err = Unmarshal([]byte{2}, &flag)
	assert.EqualError(t, err, "invalid bool byte 0x02 at offset 0")

	// claims 63 bytes but only carries one
	var payload []byte
	err = Unmarshal([]byte{0xfc, 0x01}, &payload)
	assert.ErrorIs(t, err, ErrTruncated)
}
