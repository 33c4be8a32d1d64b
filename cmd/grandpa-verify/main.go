// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ChainSafe/grandpa-verifier/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "grandpa-verify"
	app.Usage = "Verify grandpa finality justifications against a known authority set"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		LogFlag,
	}
	app.Before = setupLogger
	app.Commands = []cli.Command{
		verifyCommand,
		commitmentCommand,
		decodePrecommitCommand,
		decodeCompactCommand,
		initCommand,
	}
	return app
}

// setupLogger patches the global log level from the --log flag
func setupLogger(ctx *cli.Context) error {
	lvl := ctx.String(LogFlag.Name)
	if lvl == "" {
		return nil
	}

	level, err := log.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("parsing --%s: %w", LogFlag.Name, err)
	}
	log.PatchLevel(level)
	return nil
}
