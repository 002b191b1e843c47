package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/perceptron/logging"
	"github.com/katalvlaran/perceptron/perceptron"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag and configuration keys.
const (
	keyConfig   = "config"
	keyMaxIter  = "max-iter"
	keyRate     = "rate"
	keyInit     = "init"
	keySeed     = "seed"
	keyPlot     = "plot"
	keyLogLevel = "log-level"
)

// envPrefix namespaces environment overrides, e.g. PERCEPTRON_MAX_ITER.
const envPrefix = "perceptron"

var (
	errBadInitMode = errors.New("unknown init mode (want random, zeros or ones)")
	errBadMaxIter  = errors.New("max-iter must be > 0")
	errBadRate     = errors.New("rate must be > 0")
)

// Config is the resolved run configuration.
type Config struct {
	MaxIter  int
	Rate     float64
	Init     perceptron.InitMode
	Seed     int64
	Plot     string
	LogLevel string
}

// addFlags registers every flag on fs.
func addFlags(fs *pflag.FlagSet) {
	fs.StringP(keyConfig, "c", "", "optional YAML config file")
	fs.IntP(keyMaxIter, "n", perceptron.DefaultMaxIter, "maximum number of epochs")
	fs.Float64P(keyRate, "r", perceptron.DefaultRate, "learning rate C")
	fs.String(keyInit, perceptron.RandomInit.String(), "initial weights: random, zeros or ones")
	fs.Int64(keySeed, 0, "seed for random initial weights (0 selects the fixed default seed)")
	fs.String(keyPlot, "", "write a plot of 2-D data and the decision line to this file (.png, .svg, .pdf)")
	fs.String(keyLogLevel, logging.LevelInfo, fmt.Sprintf("log level: %s, %s, %s or %s; %s adds caller lines",
		logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelDebug))
}

// loadConfig resolves flags, PERCEPTRON_* environment variables and the
// optional config file, in that order of precedence.
func loadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	mode, err := parseInitMode(v.GetString(keyInit))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		MaxIter:  v.GetInt(keyMaxIter),
		Rate:     v.GetFloat64(keyRate),
		Init:     mode,
		Seed:     v.GetInt64(keySeed),
		Plot:     v.GetString(keyPlot),
		LogLevel: v.GetString(keyLogLevel),
	}
	if cfg.MaxIter <= 0 {
		return nil, fmt.Errorf("%w, got %d", errBadMaxIter, cfg.MaxIter)
	}
	if !(cfg.Rate > 0) {
		return nil, fmt.Errorf("%w, got %g", errBadRate, cfg.Rate)
	}

	return cfg, nil
}

func parseInitMode(s string) (perceptron.InitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", perceptron.RandomInit.String():
		return perceptron.RandomInit, nil
	case perceptron.ZeroInit.String(), "zero":
		return perceptron.ZeroInit, nil
	case perceptron.OnesInit.String(), "one":
		return perceptron.OnesInit, nil
	default:
		return 0, fmt.Errorf("%w: %q", errBadInitMode, s)
	}
}

// options converts the configuration into trainer options.
func (c *Config) options() perceptron.Options {
	opts := perceptron.DefaultOptions()
	opts.MaxIter = c.MaxIter
	opts.Rate = c.Rate
	opts.Init = c.Init
	opts.Seed = c.Seed
	if opts.Seed == 0 {
		opts.Seed = perceptron.DefaultSeed
	}
	return opts
}
