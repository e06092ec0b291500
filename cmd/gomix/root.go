/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"

	"github.com/fentec-project/gomix/data"
	"github.com/fentec-project/gomix/internal/config"
	"github.com/fentec-project/gomix/sample"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	weights    []float64
	means      []float64
	stds       []float64
	n          int
	seed       uint64
	key        string
	format     string
	summary    bool
	verbose    bool
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gomix",
		Short: "Draw samples from a one-dimensional normal mixture",
		Long: `Draw samples from a one-dimensional normal mixture and print
each sample together with the index of the component that produced it.

The mixture is given by flags, by a YAML file, or by both, in which case
explicitly set flags take precedence.

Examples:
  gomix --weights 0.5,0.5 --means 0,2 --stds 1,0.5 -n 100 --seed 42
  gomix --config mixture.yaml --format json
  gomix --config mixture.yaml --key 000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f
  gomix --config mixture.yaml -n 10000 --summary`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logger = logger.Level(zerolog.DebugLevel)
			} else {
				logger = logger.Level(zerolog.InfoLevel)
			}
			return run(cmd, opts, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "YAML file describing the mixture")
	f.Float64SliceVar(&opts.weights, "weights", nil, "component weights, summing to 1")
	f.Float64SliceVar(&opts.means, "means", nil, "component means")
	f.Float64SliceVar(&opts.stds, "stds", nil, "component standard deviations")
	f.IntVarP(&opts.n, "samples", "n", 0, "number of samples to draw")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible output (unseeded if not set)")
	f.StringVar(&opts.key, "key", "", "32-byte key as 64 hex digits, for a reproducible salsa20 stream")
	f.StringVarP(&opts.format, "format", "f", "csv", "output format: csv or json")
	f.BoolVar(&opts.summary, "summary", false, "log component frequencies and sample statistics")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options, logger zerolog.Logger) error {
	desc, err := resolve(cmd, opts)
	if err != nil {
		return err
	}
	write, err := writerFor(opts.format)
	if err != nil {
		return err
	}

	mix, err := desc.Build()
	if err != nil {
		return err
	}
	logger.Debug().
		Int("components", mix.K()).
		Int("n", desc.N).
		Bool("seeded", desc.Seed != nil).
		Bool("keyed", desc.Key != "").
		Msg("sampling mixture")

	src, err := desc.Source()
	if err != nil {
		return err
	}
	batch, err := mix.Sample(desc.N, src)
	if err != nil {
		return err
	}
	if err := write(cmd.OutOrStdout(), batch); err != nil {
		return errors.Wrap(err, "cannot write samples")
	}

	if opts.summary {
		return logSummary(logger, mix, batch)
	}
	return nil
}

// resolve merges the config file with explicitly set flags.
func resolve(cmd *cobra.Command, opts *options) (*config.Mixture, error) {
	desc := &config.Mixture{}
	if opts.configFile != "" {
		var err error
		if desc, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("weights") {
		desc.Weights = opts.weights
	}
	if f.Changed("means") {
		desc.Means = opts.means
	}
	if f.Changed("stds") {
		desc.Stds = opts.stds
	}
	if f.Changed("samples") {
		desc.N = opts.n
	}
	if f.Changed("seed") {
		seed := opts.seed
		desc.Seed = &seed
		desc.Key = ""
	}
	if f.Changed("key") {
		desc.Key = opts.key
		if !f.Changed("seed") {
			desc.Seed = nil
		}
	}

	return desc, nil
}

func logSummary(logger zerolog.Logger, mix *sample.NormalMixture, batch *sample.MixtureBatch) error {
	if len(batch.Samples) == 0 {
		logger.Info().Msg("no samples drawn")
		return nil
	}

	freq, err := data.Frequencies(batch.Components, mix.K())
	if err != nil {
		return err
	}
	s, err := data.NewVector(batch.Samples).Summary()
	if err != nil {
		return err
	}

	logger.Info().
		Int("count", s.Count).
		Float64("mean", s.Mean).
		Float64("std", s.StdDev).
		Float64("min", s.Min).
		Float64("median", s.Median).
		Float64("max", s.Max).
		Float64("expected_mean", mix.Mean()).
		Floats64("frequencies", freq).
		Floats64("weights", mix.Weights()).
		Msg("summary")
	return nil
}

func unknownFormat(format string) error {
	return fmt.Errorf("unknown output format %q, want csv or json", format)
}
