// Package main is the entry point for the stride walkthrough demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/stride/internal/config"
	"github.com/Faultbox/stride/internal/game"
	"github.com/Faultbox/stride/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== stride ===")

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create walkthrough", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("walkthrough error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
