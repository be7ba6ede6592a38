package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"anchorpoint-it.com/infopanel/internal/config"
	"anchorpoint-it.com/infopanel/internal/logging"
	"anchorpoint-it.com/infopanel/internal/network"
	"anchorpoint-it.com/infopanel/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The screen owns the terminal, so logs only go to LOG_PATH.
	logger, err := logging.NewQuiet(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	resolver := network.NewResolver(cfg.Lookup.URL,
		network.WithHTTPClient(&http.Client{Timeout: cfg.Lookup.Timeout}),
		network.WithLogger(logger.Named("network")),
	)

	model := tui.NewModel(context.Background(), resolver, logger.Named("tui"), cfg.Display.DateTimeLayout)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
