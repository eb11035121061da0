package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"reposearch/internal/config"
	"reposearch/internal/github"
	"reposearch/internal/usecase"
)

// loadConfig loads the config file, applies .env and environment
// overrides, and validates the result. A file that cannot be read falls
// back to the defaults.
func loadConfig(configSvc config.ConfigService) (*config.Config, error) {
	config.LoadEnv()

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	config.ApplyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSearcher builds the search use case over the GitHub client
func newSearcher(cfg *config.Config) (*usecase.SearchRepos, error) {
	client, err := github.NewClient(github.Options{
		BaseURL:   cfg.GitHub.APIURL,
		Token:     cfg.GitHub.Token,
		Timeout:   time.Duration(cfg.GitHub.TimeoutSec) * time.Second,
		UserAgent: "reposearch/" + version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create github client: %w", err)
	}

	executor := usecase.NewExecutor(cfg.Executor.Workers)
	return usecase.NewSearchRepos(client, executor, cfg.GitHub.Page, cfg.GitHub.PerPage), nil
}

// setupLogging sends the standard logger to an append-only file. Logging
// is discarded when the file cannot be opened so nothing reaches the
// terminal.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Could not create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}

	log.SetOutput(logFile)
	return func() {
		log.SetOutput(io.Discard)
		logFile.Close()
	}
}

// switchLogging moves logging to the configured file when it differs from
// the one opened at startup.
func switchLogging(closeLog func(), current, configured string) func() {
	if configured == current {
		return closeLog
	}
	closeLog()
	return setupLogging(configured)
}
