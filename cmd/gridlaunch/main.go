package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gridcache/launcher"
)

func main() {
	setupLogging()

	p := launcher.NewProcessor()
	p.Logger = log.Logger

	cfg, err := p.Process(os.Args[1:])
	if err != nil {
		if errors.Is(err, launcher.ErrUsage) {
			// usage text already rendered; a clean outcome
			os.Exit(0)
		}
		var syntaxErr *launcher.SyntaxError
		if errors.As(err, &syntaxErr) {
			p.WriteUsage(os.Stderr)
		}
		log.Error().Err(err).Msg("invalid launch arguments")
		os.Exit(1)
	}

	// Hand-off point: the cluster orchestrator consumes cfg from here.
	log.Info().
		Str("name", cfg.Name()).
		Int("instances", cfg.Instances()).
		Int("executors", cfg.Executors()).
		Str("cache", launcher.ByteSize(cfg.CacheSize()).String()).
		Str("size", launcher.ByteSize(cfg.ContainerSize()).String()).
		Str("xmx", launcher.ByteSize(cfg.HeapSize()).String()).
		Bool("auxhbase", cfg.IncludeHBaseJars()).
		Int("properties", len(cfg.Properties())).
		Msg("launch configuration accepted")
}

// setupLogging configures zerolog for human-readable output on stderr.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
