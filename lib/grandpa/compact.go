// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/grandpa-verifier/pkg/scale"
)

// DecodeScaleCompactInt decodes the compact integer at the start of b and returns
// its value and the number of bytes it occupies.
func DecodeScaleCompactInt(b []byte) (value uint64, consumed int, err error) {
	value, consumed, err = scale.DecodeCompactUint(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedInteger, err)
	}
	return value, consumed, nil
}
