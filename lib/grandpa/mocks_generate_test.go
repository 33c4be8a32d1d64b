// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . HeaderHasher
//go:generate mockgen -destination=mock_recorder_test.go -package $GOPACKAGE github.com/ChainSafe/grandpa-verifier/internal/metrics Recorder
