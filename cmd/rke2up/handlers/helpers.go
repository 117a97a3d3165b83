// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/config"
)

// loadInventory loads the inventory from path, falling back to the default
// location when no path was given.
func loadInventory(path string) (*config.Inventory, error) {
	if path == "" {
		path = config.DefaultInventoryPath
	}
	return config.LoadFile(path)
}

// newLogger builds a console logger for the one-shot run. Errors building
// it degrade to a no-op logger rather than aborting the bootstrap.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
