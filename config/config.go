// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/ChainSafe/grandpa-verifier/internal/log"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-verifier/lib/grandpa"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// ErrSetHashMismatch is returned when the configured public keys do not commit
// to the configured authority set hash.
var ErrSetHashMismatch = errors.New("authority public keys do not match set hash")

// Config is the configuration of the verifier
type Config struct {
	Log       LogConfig       `toml:"log,omitempty"`
	Authority AuthorityConfig `toml:"authority,omitempty"`
	Verify    VerifyConfig    `toml:"verify,omitempty"`
	Metrics   MetricsConfig   `toml:"metrics,omitempty"`
}

// LogConfig is the logging configuration
type LogConfig struct {
	Level string `toml:"level,omitempty" validate:"required"`
}

// AuthorityConfig is the authority set justifications are verified against
type AuthorityConfig struct {
	SetID   uint64   `toml:"set-id"`
	SetHash string   `toml:"set-hash,omitempty" validate:"omitempty,startswith=0x,len=66,hexadecimal"`
	Pubkeys []string `toml:"pubkeys,omitempty" validate:"dive,startswith=0x,len=66,hexadecimal"`
}

// VerifyConfig tunes justification verification
type VerifyConfig struct {
	Workers          int `toml:"workers,omitempty" validate:"min=1,max=1024"`
	MaxAncestryDepth int `toml:"max-ancestry-depth,omitempty" validate:"min=1"`
}

// MetricsConfig is the metrics output configuration
type MetricsConfig struct {
	Textfile string `toml:"textfile,omitempty"`
}

// AuthoritySet is the decoded authority configuration
type AuthoritySet struct {
	ID      uint64
	Hash    common.Hash
	Pubkeys []ed25519.PublicKeyBytes
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: log.Info.String(),
		},
		Verify: VerifyConfig{
			Workers:          runtime.NumCPU(),
			MaxAncestryDepth: grandpa.MaxAncestryDepth,
		},
	}
}

// Load reads the toml file at path over the default configuration and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	if err = toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Export writes the configuration to a toml file at path.
func Export(cfg *Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks the field constraints of the configuration, that the log level
// is known and that the authority public keys, when given, commit to the set hash.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	_, err = c.LogLevel()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	_, err = c.Authority.Parse()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Parse decodes the authority configuration. When public keys are configured
// without a set hash, the set hash is their commitment.
func (a AuthorityConfig) Parse() (set AuthoritySet, err error) {
	set.ID = a.SetID

	set.Pubkeys = make([]ed25519.PublicKeyBytes, len(a.Pubkeys))
	for i, pubkey := range a.Pubkeys {
		b, err := common.HexToBytes(pubkey)
		if err != nil {
			return AuthoritySet{}, fmt.Errorf("decoding public key %d: %w", i, err)
		}
		copy(set.Pubkeys[i][:], b)
	}

	if a.SetHash != "" {
		set.Hash, err = common.HexToHash(a.SetHash)
		if err != nil {
			return AuthoritySet{}, fmt.Errorf("decoding set hash: %w", err)
		}
	}

	if len(set.Pubkeys) == 0 {
		return set, nil
	}

	commitment, err := grandpa.ComputeAuthoritySetCommitment(set.Pubkeys)
	if err != nil {
		return AuthoritySet{}, err
	}

	if a.SetHash == "" {
		set.Hash = commitment
	} else if commitment != set.Hash {
		return AuthoritySet{}, fmt.Errorf("%w: commitment is %s, set hash is %s",
			ErrSetHashMismatch, commitment, set.Hash)
	}

	return set, nil
}
