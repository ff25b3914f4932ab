package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/image-binarize/internal/config"
	"github.com/ironsheep/image-binarize/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		cfg = config.Default()
	}

	log := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))
	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("starting")

	// Processing failures are reported by the command itself and still exit 0.
	// Only argument errors reach this point.
	if err := newRootCmd(cfg, log, os.Stdout).Execute(); err != nil {
		os.Exit(2)
	}
}
