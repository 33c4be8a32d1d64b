// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import (
	"encoding/binary"
	"fmt"
)

// Compact integer modes, taken from the two least significant bits of the first byte.
const (
	singleByteMode = 0b00
	twoByteMode    = 0b01
	fourByteMode   = 0b10
	bigIntegerMode = 0b11
)

// Upper bounds (inclusive) of the values each fixed size mode can hold.
const (
	maxSingleByte = 1<<6 - 1
	maxTwoByte    = 1<<14 - 1
	maxFourByte   = 1<<30 - 1
)

// DecodeCompactUint decodes a compact encoded unsigned integer from the start of b.
// It returns the value and the number of bytes it occupied. Only canonical encodings
// of values fitting a uint64 are accepted.
func DecodeCompactUint(b []byte) (value uint64, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("%w: empty compact integer", ErrTruncated)
	}

	prefix := b[0]
	switch prefix & 0b11 {
	case singleByteMode:
		return uint64(prefix >> 2), 1, nil
	case twoByteMode:
		if len(b) < 2 {
			return 0, 0, fmt.Errorf("%w: two byte compact integer has %d bytes", ErrTruncated, len(b))
		}
		value = uint64(binary.LittleEndian.Uint16(b[:2]) >> 2)
		if value <= maxSingleByte {
			return 0, 0, fmt.Errorf("%w: %d fits a single byte", ErrNonCanonicalCompact, value)
		}
		return value, 2, nil
	case fourByteMode:
		if len(b) < 4 {
			return 0, 0, fmt.Errorf("%w: four byte compact integer has %d bytes", ErrTruncated, len(b))
		}
		value = uint64(binary.LittleEndian.Uint32(b[:4]) >> 2)
		if value <= maxTwoByte {
			return 0, 0, fmt.Errorf("%w: %d fits two bytes", ErrNonCanonicalCompact, value)
		}
		return value, 4, nil
	default:
		return decodeBigIntegerMode(b)
	}
}

func decodeBigIntegerMode(b []byte) (value uint64, consumed int, err error) {
	numBytes := int(b[0]>>2) + 4
	if numBytes > 8 {
		return 0, 0, fmt.Errorf("%w: %d value bytes", ErrCompactOverflow, numBytes)
	}

	if len(b) < 1+numBytes {
		return 0, 0, fmt.Errorf("%w: compact integer needs %d bytes, has %d",
			ErrTruncated, 1+numBytes, len(b))
	}

	var buf [8]byte
	copy(buf[:], b[1:1+numBytes])
	value = binary.LittleEndian.Uint64(buf[:])

	if numBytes == 4 {
		if value <= maxFourByte {
			return 0, 0, fmt.Errorf("%w: %d fits four bytes", ErrNonCanonicalCompact, value)
		}
	} else if b[numBytes] == 0 {
		// the most significant byte must be set, otherwise fewer bytes would do
		return 0, 0, fmt.Errorf("%w: %d does not need %d bytes", ErrNonCanonicalCompact, value, numBytes)
	}

	return value, 1 + numBytes, nil
}

// CompactLen returns the number of bytes the compact encoding of v occupies.
func CompactLen(v uint64) int {
	switch {
	case v <= maxSingleByte:
		return 1
	case v <= maxTwoByte:
		return 2
	case v <= maxFourByte:
		return 4
	}

	numBytes := 0
	for m := v; m != 0; m >>= 8 {
		numBytes++
	}
	if numBytes < 4 {
		numBytes = 4
	}
	return 1 + numBytes
}
