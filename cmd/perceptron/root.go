package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/logging"
	"github.com/katalvlaran/perceptron/parse"
	"github.com/katalvlaran/perceptron/perceptron"
	"github.com/katalvlaran/perceptron/plot"
	"github.com/katalvlaran/perceptron/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perceptron [flags] <input-file>",
		Short: "Train a two-class perceptron",
		Long: "Train a linear two-class classifier with the perceptron rule.\n" +
			"Line 1 of the input file holds class 1 points, line 2 holds class 2 points,\n" +
			"each written as parenthesized tuples such as (1, 2) (3, 4).",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one input file, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, args[0], cfg)
		},
	}
	addFlags(cmd.Flags())

	return cmd
}

// run reads the input, trains and prints the result.
func run(cmd *cobra.Command, path string, cfg *Config) error {
	log, err := logging.New("perceptron", logging.Config{
		Level:    cfg.LogLevel,
		Output:   cmd.ErrOrStderr(),
		ShowLine: strings.EqualFold(cfg.LogLevel, logging.LevelDebug),
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	class1, class2, err := parse.ReadFile(path)
	switch {
	case errors.Is(err, parse.ErrFileNotFound):
		return fmt.Errorf("cannot open input: %w", err)
	case errors.Is(err, parse.ErrFormat):
		return fmt.Errorf("malformed input file: %w", err)
	case err != nil:
		return err
	}

	set, err := dataset.Build(class1, class2)
	if err != nil {
		return fmt.Errorf("invalid training data: %w", err)
	}

	opts := cfg.options()
	opts.OnEpoch = func(epoch, mistakes int) {
		log.Debugw("epoch finished", "epoch", epoch, "mistakes", mistakes)
	}
	n1, n2 := set.Counts()
	log.Infow("training started",
		"file", path,
		"class1", n1,
		"class2", n2,
		"dim", set.Dim(),
		"init", opts.Init,
		"seed", opts.Seed,
	)

	res, err := perceptron.Train(set, opts)
	if err != nil {
		return fmt.Errorf("invalid training options: %w", err)
	}
	log.Infow("training finished",
		"status", res.Status,
		"epochs", res.Epochs,
		"updates", res.Updates,
	)

	out := cmd.OutOrStdout()
	if err := report.WriteHeader(out, res.Initial, opts.MaxIter, opts.Rate); err != nil {
		return err
	}
	if err := report.Write(out, res); err != nil {
		return err
	}

	if cfg.Plot != "" {
		savePlot(log, set, res, cfg.Plot)
	}

	return nil
}

// savePlot draws the data and, when available, the learned boundary.
// Failures are logged; the training result has already been printed.
func savePlot(log *zap.SugaredLogger, set *dataset.SampleSet, res perceptron.Result, path string) {
	if err := plot.Save(set, res.Weights, path, plot.DefaultOptions()); err != nil {
		log.Warnw("plot skipped", "path", path, "error", err)
		return
	}
	log.Infow("plot written", "path", path)
}
