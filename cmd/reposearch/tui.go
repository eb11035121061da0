package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/config"
	"reposearch/internal/eventbus"
	"reposearch/internal/savedstate"
	"reposearch/internal/ui"
	"reposearch/internal/ui/commands"
	"reposearch/internal/ui/handlers"
	"reposearch/internal/ui/viewmodels"
)

// runTUI runs the interactive search screen until the user quits
func runTUI(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Set up logging
	defaultLog := config.DefaultConfig().Paths.LogFile
	closeLog := setupLogging(defaultLog)
	defer func() { closeLog() }()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchSucceeded,
		eventbus.EventSearchFailed,
		eventbus.EventDetailOpened,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forwardEvent)
	}

	// Load configuration, writing the defaults on first run
	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	_, statErr := os.Stat(configSvc.Path())
	cfg, err := loadConfig(configSvc)
	if err != nil {
		return err
	}
	if os.IsNotExist(statErr) {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
	closeLog = switchLogging(closeLog, defaultLog, cfg.Paths.LogFile)

	// Restorable state
	saved, err := savedstate.Open(cfg.Paths.StateFile)
	if err != nil {
		log.Printf("Error loading saved state: %v", err)
		saved = savedstate.NewMemory()
	}
	defer func() {
		if err := saved.Save(); err != nil {
			log.Printf("Failed to save state: %v", err)
		}
	}()
	bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
		if err := saved.Save(); err != nil {
			log.Printf("Failed to save state: %v", err)
		}
	})
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok {
			log.Printf("Search for %q failed: %v", event.Query, event.Err)
		}
	})

	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}

	vm := viewmodels.NewSearchViewModel(searcher, viewmodels.Options{
		Labels:      cfg.UISettings.Labels,
		Page:        cfg.GitHub.Page,
		PerPage:     cfg.GitHub.PerPage,
		EventBuffer: cfg.UISettings.EventBuffer,
		SavedState:  saved,
		Bus:         bus,
	})
	go func() {
		if err := vm.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("View model stopped: %v", err)
		}
	}()
	defer func() {
		vm.Close()
		<-vm.Done()
	}()

	var opener commands.Opener
	if o := commands.NewExecOpener(cfg.OpenCommand); o != nil {
		opener = o
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, vm, opener)
	defer uiModel.Close()

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Start forwarding events to UI in background
	forwardDone := make(chan struct{})
	go func() {
		defer close(forwardDone)
		for {
			select {
			case event := <-eventChan:
				p.Send(handlers.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		cancel()
		<-forwardDone
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	cancel()
	<-forwardDone
	return nil
}
