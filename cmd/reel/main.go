package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/config"
	"github.com/mmcdole/reel/internal/log"
	"github.com/mmcdole/reel/internal/store"
	"github.com/mmcdole/reel/internal/suggest"
	"github.com/mmcdole/reel/internal/tmdb"
	"github.com/mmcdole/reel/internal/tui"
	"github.com/mmcdole/reel/internal/watchlist"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var configPath string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// A missing API key fails here, before the watchlist is touched
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, logCloser = log.NullLogger(), io.NopCloser(nil)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("reel needs an interactive terminal")
	}

	backend, err := store.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open watchlist storage: %w", err)
	}
	movies := watchlist.New(backend, logger)
	movies.Load()

	client := tmdb.NewClient(tmdb.Config{
		BaseURL:           cfg.TMDB.BaseURL,
		APIKey:            cfg.TMDB.APIKey,
		Language:          cfg.TMDB.Language,
		Timeout:           cfg.TMDB.Timeout,
		RequestsPerSecond: cfg.TMDB.RequestsPerSecond,
	}, logger)

	suggestions := suggest.NewService(client, movies, suggest.Options{
		Limit:     cfg.Suggestions.Limit,
		TopGenres: cfg.Suggestions.TopGenres,
	}, logger)

	model := tui.NewModel(movies, suggestions, client, cfg.TMDB.Timeout, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	_, runErr := p.Run()
	if runErr != nil {
		logger.Error("TUI error", "error", runErr)
	}

	// Save even if the UI failed
	if err := movies.Save(); err != nil {
		return fmt.Errorf("failed to save watchlist to %s: %w", movies.Location(), err)
	}
	fmt.Printf("Watchlist saved to %s\n", movies.Location())

	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}

	logger.Info("shutting down")
	return nil
}
