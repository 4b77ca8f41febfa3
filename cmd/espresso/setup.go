package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/espresso-rush/internal/config"
	"github.com/vovakirdan/espresso-rush/internal/roast"
	"github.com/vovakirdan/espresso-rush/internal/storage"
)

// loadRunnerConfig reads the runner tuning and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// parseLang validates --lang.
func parseLang() (roast.Lang, error) {
	return roast.ParseLang(flagLang)
}

// openFileLogger opens an append-only log file so logging does not draw
// over the alt-screen.
func openFileLogger(path string, verbose bool) (*log.Logger, io.Closer, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "espresso",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}
