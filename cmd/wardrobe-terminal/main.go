package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/wardrobe-terminal/internal/backend"
	"github.com/ngmaloney/wardrobe-terminal/internal/config"
	"github.com/ngmaloney/wardrobe-terminal/internal/identity"
	"github.com/ngmaloney/wardrobe-terminal/internal/storage"
	"github.com/ngmaloney/wardrobe-terminal/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (default "+config.DefaultPath+" if present)")
	debugLog := flag.String("debug", "", "Write debug logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if *debugLog != "" {
		cfg.Logging.File = *debugLog
	}

	// The alt screen owns the terminal, so logs go to a file or nowhere
	if cfg.Logging.File != "" {
		f, err := tea.LogToFile(cfg.Logging.File, "wardrobe")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	repo, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		fmt.Printf("Error opening local storage: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	provider, err := identity.NewLocalProvider(cfg.Identity, repo)
	if err != nil {
		fmt.Printf("Error configuring sign-in: %v\n", err)
		os.Exit(1)
	}

	client := backend.NewClient(backend.Options{
		BaseURL:           cfg.BaseURL(),
		Timeout:           cfg.Backend.Timeout,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
	})

	log.Printf("Starting wardrobe-terminal against %s", cfg.BaseURL())

	model := ui.NewModel(ui.Deps{
		Weather:  client,
		Users:    client,
		Identity: provider,
		Store:    repo,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
