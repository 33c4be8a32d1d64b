// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
)

// BuildAncestryMap maps the hash of each encoded header to its parent hash, which
// is the first 32 bytes of the encoding. When two headers hash to the same value
// the later one wins.
func BuildAncestryMap(encodedHeaders [][]byte, hasher HeaderHasher) (map[common.Hash]common.Hash, error) {
	ancestry := make(map[common.Hash]common.Hash, len(encodedHeaders))
	for i, encoded := range encodedHeaders {
		if len(encoded) < HashLength {
			return nil, fmt.Errorf("%w: ancestry header %d has %d bytes, need at least %d for the parent hash",
				ErrMalformedHeader, i, len(encoded), HashLength)
		}

		ancestry[hasher.HashEncodedHeader(encoded)] = common.NewHash(encoded[:HashLength])
	}
	return ancestry, nil
}

// ConfirmAncestry reports whether child is root or a descendant of root by following
// parent links in ancestry. It follows at most MaxAncestryDepth links.
func ConfirmAncestry(child, root common.Hash, ancestry map[common.Hash]common.Hash) bool {
	return confirmAncestry(child, root, ancestry, MaxAncestryDepth)
}

func confirmAncestry(child, root common.Hash, ancestry map[common.Hash]common.Hash, maxDepth int) bool {
	visited := make(map[common.Hash]struct{})
	current := child

	for hops := 0; current != root; hops++ {
		if hops >= maxDepth {
			return false
		}

		if _, ok := visited[current]; ok {
			// cycle in the provided headers
			return false
		}
		visited[current] = struct{}{}

		parent, ok := ancestry[current]
		if !ok {
			return false
		}
		current = parent
	}

	return true
}
