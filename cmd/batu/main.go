package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/batuchess/batu/pkg/engine"
	material "github.com/batuchess/batu/pkg/eval/material"
	nn "github.com/batuchess/batu/pkg/eval/nn"
	"github.com/batuchess/batu/pkg/uci"
)

const (
	name   = "Batu"
	author = "Batu authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgHash     int
	flgWeights  string
	flgLogLevel string
)

func main() {
	flag.IntVar(&flgHash, "hash", 32, "transposition table size in megabytes")
	flag.StringVar(&flgWeights, "weights", "./weights.txt", "neural network weights file")
	flag.StringVar(&flgLogLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	var level, err = zerolog.ParseLevel(flgLogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	logger.Info().
		Str("name", name).
		Str("version", versionName).
		Str("build-date", buildDate).
		Str("git-revision", gitRevision).
		Str("runtime-version", runtime.Version()).
		Str("goarch", runtime.GOARCH).
		Str("goos", runtime.GOOS).
		Int("num-cpu", runtime.NumCPU()).
		Msg("starting")

	var static = material.NewEvaluationService()
	var network = nn.NewEvaluationService(nil)
	var weightsPath = flgWeights
	var useNN = false
	if w, err := nn.LoadFile(weightsPath); err == nil {
		network.Weights = w
		useNN = true
		logger.Info().Str("path", weightsPath).Msg("weights-loaded")
	} else {
		logger.Warn().Err(err).Str("path", weightsPath).Msg("weights-not-loaded")
	}

	var eng = engine.NewEngine(static)
	eng.Logger = logger
	eng.Options.Hash = flgHash
	if useNN {
		eng.SetEvaluator(network)
	}

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 1, Max: 1 << 16, Value: &eng.Options.Hash},
			&uci.BoolOption{Name: "NullMovePruning", Value: &eng.Options.NullMovePruning},
			&uci.BoolOption{Name: "LateMoveReduction", Value: &eng.Options.LateMoveReduction},
			&uci.BoolOption{Name: "DeltaPruning", Value: &eng.Options.DeltaPruning},
			&uci.BoolOption{Name: "UseTransTable", Value: &eng.Options.UseTransTable},
			&uci.BoolOption{Name: "UseNN", Value: &useNN, OnChange: func(v bool) error {
				if v && !network.Loaded() {
					return nn.ErrNotLoaded
				}
				if v {
					eng.SetEvaluator(network)
				} else {
					eng.SetEvaluator(static)
				}
				return nil
			}},
			&uci.StringOption{Name: "Weights", Value: &weightsPath, OnChange: func(v string) error {
				var w, err = nn.LoadFile(v)
				if err != nil {
					return err
				}
				network.Weights = w
				logger.Info().Str("path", v).Msg("weights-loaded")
				return nil
			}},
		},
	)
	protocol.SetEvaluators(
		uci.NamedEvaluator{Name: "NN", Evaluator: network},
		uci.NamedEvaluator{Name: "Static", Evaluator: static},
	)
	protocol.Run(logger)
}
