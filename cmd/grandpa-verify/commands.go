// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-verifier/config"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/grandpa"
	"github.com/urfave/cli"
)

var errWrongArgCount = errors.New("wrong number of arguments")

var (
	commitmentCommand = cli.Command{
		Action:    commitmentAction,
		Name:      "commitment",
		Usage:     "Print the commitment of an ordered list of authority public keys",
		ArgsUsage: "<0x pubkey>...",
	}
	decodePrecommitCommand = cli.Command{
		Action:    decodePrecommitAction,
		Name:      "decode-precommit",
		Usage:     "Decode a 53 byte encoded precommit message",
		ArgsUsage: "<0x precommit>",
	}
	decodeCompactCommand = cli.Command{
		Action:    decodeCompactAction,
		Name:      "decode-compact",
		Usage:     "Decode a compact encoded integer and print its value and encoded size",
		ArgsUsage: "<0x bytes>",
	}
	initCommand = cli.Command{
		Action: initAction,
		Name:   "init",
		Usage:  "Write the default configuration to a toml file",
		Flags: []cli.Flag{
			OutputFlag,
		},
	}
)

func commitmentAction(ctx *cli.Context) error {
	pubkeys, err := parsePublicKeys(ctx.Args())
	if err != nil {
		return err
	}

	commitment, err := grandpa.ComputeAuthoritySetCommitment(pubkeys)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(ctx.App.Writer, commitment)
	return nil
}

func singleHexArg(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("%w: expected 1, got %d", errWrongArgCount, ctx.NArg())
	}
	return common.HexToBytes(ctx.Args().First())
}

func decodePrecommitAction(ctx *cli.Context) error {
	b, err := singleHexArg(ctx)
	if err != nil {
		return err
	}

	precommit, err := grandpa.DecodeAndVerifyPrecommit(b)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ctx.App.Writer, "target hash: %s\ntarget number: %d\nround: %d\nauthority set id: %d\n",
		precommit.TargetHash, precommit.TargetNumber, precommit.Round, precommit.AuthoritySetID)
	return nil
}

func decodeCompactAction(ctx *cli.Context) error {
	b, err := singleHexArg(ctx)
	if err != nil {
		return err
	}

	value, consumed, err := grandpa.DecodeScaleCompactInt(b)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ctx.App.Writer, "value: %d\nconsumed: %d\n", value, consumed)
	return nil
}

func initAction(ctx *cli.Context) error {
	path := ctx.String(OutputFlag.Name)

	err := config.Export(config.Default(), path)
	if err != nil {
		return err
	}

	logger.Info("wrote default configuration to " + path)
	return nil
}
