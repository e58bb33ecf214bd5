package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/parkjam/internal/core"
	"github.com/vovakirdan/parkjam/internal/games/parkjam"
	"github.com/vovakirdan/parkjam/internal/games/parkjam/levels"
	"github.com/vovakirdan/parkjam/internal/platform/tui"
	"github.com/vovakirdan/parkjam/internal/registry"
	"github.com/vovakirdan/parkjam/internal/storage"
)

var flagLevel int

func init() {
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Skip the menus and start on this level (1-indexed)")
}

func runPlay(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLevel < 0 || flagLevel > levels.Count() {
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", flagLevel)
		fmt.Fprintln(os.Stderr, "Run 'parkjam levels' to see available levels.")
		os.Exit(1)
	}
	parkjam.SetStartLevel(flagLevel)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(parkjam.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger, logFile := openEventLog(flagLogPath)

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Rules:  rules,
	})

	// Close collaborators before potential exit
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openEventLog opens the event log for appending. The terminal belongs to the
// game, so events go to a file. Returns a nil logger when logging is off or
// the file cannot be opened.
func openEventLog(path string) (*log.Logger, *os.File) {
	if path == "" {
		return nil, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open event log: %v\n", err)
			return nil, nil
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open event log: %v\n", err)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open event log: %v\n", err)
		return nil, nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "parkjam",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f
}
