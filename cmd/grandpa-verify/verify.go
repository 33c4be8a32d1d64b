// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ChainSafe/grandpa-verifier/config"
	"github.com/ChainSafe/grandpa-verifier/internal/log"
	"github.com/ChainSafe/grandpa-verifier/internal/metrics"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/grandpa"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var (
	errNoJustifications = errors.New("no justification files given")
	errNoAuthoritySet   = errors.New("no authority set hash configured")
	errRejected         = errors.New("justifications rejected")
)

var verifyCommand = cli.Command{
	Action:    verifyAction,
	Name:      "verify",
	Usage:     "Verify justification JSON files against the configured authority set",
	ArgsUsage: "<justification.json>...",
	Flags: []cli.Flag{
		ConfigFlag,
		SetIDFlag,
		SetHashFlag,
		WorkersFlag,
		MetricsTextfileFlag,
	},
	Description: "The verify command checks each justification file concurrently and prints\n" +
		"\tone verdict per file. It exits with an error if any justification is rejected.\n" +
		"\tUsage: grandpa-verify verify --config config.toml justification.json",
}

// verdict is the outcome of verifying one justification file
type verdict struct {
	path string
	err  error
}

func (v verdict) String() string {
	if v.err != nil {
		return v.path + ": rejected: " + v.err.Error()
	}
	return v.path + ": accepted"
}

func verifyAction(ctx *cli.Context) error {
	paths := ctx.Args()
	if len(paths) == 0 {
		return errNoJustifications
	}

	cfg, err := loadVerifyConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.GlobalString(LogFlag.Name) == "" {
		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		log.PatchLevel(level)
	}

	set, err := cfg.Authority.Parse()
	if err != nil {
		return err
	}
	if set.Hash.IsEmpty() {
		return errNoAuthoritySet
	}

	var recorder metrics.Recorder = metrics.Noop{}
	var prometheusMetrics *metrics.Prometheus
	if cfg.Metrics.Textfile != "" {
		prometheusMetrics, err = metrics.NewPrometheus()
		if err != nil {
			return err
		}
		recorder = prometheusMetrics
	}

	verifier := grandpa.NewVerifier(
		grandpa.WithLogger(logger),
		grandpa.WithMetrics(recorder),
		grandpa.WithMaxAncestryDepth(cfg.Verify.MaxAncestryDepth),
	)

	verdicts := verifyFiles(verifier, paths, cfg.Verify.Workers, set.ID, set.Hash)

	rejected := 0
	for _, v := range verdicts {
		if v.err != nil {
			rejected++
		}
		_, _ = fmt.Fprintln(ctx.App.Writer, v)
	}

	if prometheusMetrics != nil {
		err = prometheusMetrics.WriteTextfile(cfg.Metrics.Textfile)
		if err != nil {
			return err
		}
		logger.Debugf("wrote metrics to %s", cfg.Metrics.Textfile)
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(verdicts))
	}

	logger.Infof("verified %d justifications for authority set %d", len(verdicts), set.ID)
	return nil
}

// verifyFiles verifies the justification files with at most workers concurrent
// verifications, and returns the verdicts in the order of paths.
func verifyFiles(verifier *grandpa.Verifier, paths []string, workers int,
	setID uint64, setHash common.Hash) []verdict {
	verdicts := make([]verdict, len(paths))

	var group errgroup.Group
	group.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			verdicts[i] = verdict{path: path}

			j, err := readJustification(path)
			if err != nil {
				verdicts[i].err = err
				return nil
			}

			verdicts[i].err = verifier.Verify(j, setID, setHash)
			return nil
		})
	}
	_ = group.Wait()

	return verdicts
}

// loadVerifyConfig loads the config file if one is given and applies the flag overrides.
func loadVerifyConfig(ctx *cli.Context) (cfg *config.Config, err error) {
	cfg = config.Default()
	if path := ctx.String(ConfigFlag.Name); path != "" {
		logger.Debug("loading toml configuration from " + path)
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if setID := ctx.String(SetIDFlag.Name); setID != "" {
		cfg.Authority.SetID, err = strconv.ParseUint(setID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing --%s: %w", SetIDFlag.Name, err)
		}
	}

	if setHash := ctx.String(SetHashFlag.Name); setHash != "" {
		cfg.Authority.SetHash = setHash
	}

	if workers := ctx.Int(WorkersFlag.Name); workers != 0 {
		cfg.Verify.Workers = workers
	}

	if textfile := ctx.String(MetricsTextfileFlag.Name); textfile != "" {
		cfg.Metrics.Textfile = textfile
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
