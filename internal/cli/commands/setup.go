// Package commands implements the numo subcommands.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/numo-sh/numo/internal/cli/config"
	"github.com/numo-sh/numo/internal/engine"
	"github.com/numo-sh/numo/internal/provider"
	"github.com/numo-sh/numo/internal/state"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Engine *engine.Engine

	// Store is nil when history is disabled or the database could not be
	// opened. Commands treat a nil store as "don't record".
	Store state.HistoryStore
}

// NewCommandContext creates a CommandContext with the engine and history
// store wired from configuration. Returns the context and a cleanup
// function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng := createEngine(cfg, logger)
	store := openHistoryStore(cfg, logger)

	cleanup := func() {
		if store != nil {
			_ = store.Close()
		}
	}

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Engine: eng,
		Store:  store,
	}, cleanup, nil
}

// Record appends one result to the history store, if one is open.
// History is observational: write failures are logged, never surfaced.
func (cc *CommandContext) Record(sessionID string, res engine.Result) {
	if cc.Store == nil || sessionID == "" {
		return
	}
	entry := state.Entry{
		SessionID: sessionID,
		Input:     res.Input,
		Resolver:  res.Resolver,
		Output:    res.Output,
	}
	if !res.OK() {
		entry.FailureKind = engine.FailureKind(res.Err)
	}
	if err := cc.Store.Append(entry); err != nil {
		cc.Logger.Warn("failed to record history entry", "error", err)
	}
}

// BeginSession starts a history session, returning an empty ID when
// history is disabled or the store rejects the write.
func (cc *CommandContext) BeginSession(source string) string {
	if cc.Store == nil {
		return ""
	}
	id, err := cc.Store.BeginSession(source)
	if err != nil {
		cc.Logger.Warn("failed to begin history session", "error", err)
		return ""
	}
	return id
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	timeout := config.DefaultHTTPTimeout
	if v, err := strconv.Atoi(os.Getenv("NUMO_HTTP_TIMEOUT")); err == nil && v > 0 {
		timeout = v
	}

	return &config.Config{
		HistoryPath:       getEnvOrDefault("NUMO_HISTORY_PATH", config.DefaultHistoryFile),
		NoHistory:         os.Getenv("NUMO_NO_HISTORY") == "true",
		RatesEndpoint:     os.Getenv("NUMO_RATES_ENDPOINT"),
		TranslateEndpoint: os.Getenv("NUMO_TRANSLATE_ENDPOINT"),
		HTTPTimeout:       timeout,
		Verbose:           os.Getenv("NUMO_VERBOSE") == "true",
		OutputFormat:      getEnvOrDefault("NUMO_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func createEngine(cfg *config.Config, logger *slog.Logger) *engine.Engine {
	timeout := time.Duration(cfg.HTTPTimeout) * time.Second

	rates := provider.NewHTTPRateSource(provider.RatesConfig{
		Endpoint: cfg.RatesEndpoint,
		Timeout:  timeout,
		Logger:   logger,
	})
	translator := provider.NewHTTPTranslator(provider.TranslateConfig{
		Endpoint: cfg.TranslateEndpoint,
		Timeout:  timeout,
		Logger:   logger,
	})

	return engine.New(engine.Options{
		Rates:      rates,
		Translator: translator,
		Logger:     logger,
	})
}

// openHistoryStore opens the history database, returning nil when history
// is disabled or the database cannot be opened.
func openHistoryStore(cfg *config.Config, logger *slog.Logger) state.HistoryStore {
	if cfg.NoHistory || cfg.HistoryPath == "" {
		return nil
	}

	dir := filepath.Dir(cfg.HistoryPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			logger.Warn("failed to create history directory", "path", dir, "error", err)
			return nil
		}
	}

	store, err := state.Open(cfg.HistoryPath)
	if err != nil {
		logger.Warn("failed to open history database", "path", cfg.HistoryPath, "error", err)
		return nil
	}
	return store
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
