package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"boxpick/internal/config"
	"boxpick/internal/eventbus"
	"boxpick/internal/selection"
	"boxpick/internal/ui"
)

// runUI starts the interactive selector
func runUI(opts *rootOptions) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Bus-aware service so the UI hears about saves
	configSvc := config.NewConfigServiceWithBus(opts.configSvc.Path(), bus)

	svc := selection.NewService(opts.cfg.Policy, bus)

	uiModel := ui.NewModel(bus, opts.cfg, configSvc, svc, ui.Options{
		ShowReady:     os.Getenv(EnvE2E) == "1",
		HasConfigFile: opts.hasConfig,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn().Str("event", string(e.Type())).Msg("event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventBoxSelected,
		eventbus.EventIdentifierIgnored,
		eventbus.EventSelectionCleared,
		eventbus.EventPolicyChanged,
		eventbus.EventConfigSaved,
		eventbus.EventError,
		eventbus.EventAppReady,
	} {
		bus.Subscribe(t, forward)
	}

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info().Msg("starting UI")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("error running program")
		return fmt.Errorf("error running program: %w", err)
	}

	log.Info().
		Interface("selection", uiModel.Selection()).
		Msg("UI exited normally")
	return nil
}
