// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// LogFlag sets the log level of every package
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels critical, error, warn, info, debug and trace",
	}
)

// Verify flags
var (
	// ConfigFlag is the toml configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// SetIDFlag overrides the configured authority set id
	SetIDFlag = cli.StringFlag{
		Name:  "set-id",
		Usage: "Authority set id the justifications must belong to, overriding the config file",
	}
	// SetHashFlag overrides the configured authority set hash
	SetHashFlag = cli.StringFlag{
		Name:  "set-hash",
		Usage: "0x prefixed authority set commitment, overriding the config file",
	}
	// WorkersFlag overrides the configured number of concurrent verifications
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "Number of justifications verified concurrently, overriding the config file",
	}
	// MetricsTextfileFlag overrides the configured metrics textfile
	MetricsTextfileFlag = cli.StringFlag{
		Name:  "metrics-textfile",
		Usage: "Write verification metrics to this file in the prometheus text format",
	}
)

// Init flags
var (
	// OutputFlag is the path the default configuration is written to
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Path of the configuration file to write",
		Value: "config.toml",
	}
)
