// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import "errors"

var (
	// ErrTruncated is returned when the input ends before the value is fully decoded.
	ErrTruncated = errors.New("unexpected end of input")
	// ErrCompactOverflow is returned when a compact integer does not fit in a uint64.
	ErrCompactOverflow = errors.New("compact integer overflows uint64")
	// ErrNonCanonicalCompact is returned when a compact integer uses a wider mode than needed.
	ErrNonCanonicalCompact = errors.New("compact integer is not canonically encoded")
	// ErrUnsupportedType is returned for Go types the codec does not handle.
	ErrUnsupportedType = errors.New("unsupported type")
)
