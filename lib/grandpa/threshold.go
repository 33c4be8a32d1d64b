// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"math/bits"
)

// IsSupermajority reports whether signers is strictly more than two thirds of setSize,
// that is 3*signers > 2*setSize. The products are computed on 128 bits.
func IsSupermajority(signers, setSize uint64) bool {
	if setSize == 0 {
		return false
	}

	signersHi, signersLo := bits.Mul64(signers, 3)
	setHi, setLo := bits.Mul64(setSize, 2)
	if signersHi != setHi {
		return signersHi > setHi
	}
	return signersLo > setLo
}
