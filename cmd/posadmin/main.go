package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/example/posadmin/internal/api"
	"github.com/example/posadmin/internal/cart"
	"github.com/example/posadmin/internal/config"
	"github.com/example/posadmin/internal/i18n"
	"github.com/example/posadmin/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logFile, err := cfg.SetupLogger()
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logFile.Close()

	store := config.NewStore(cfg.SettingsFile)
	settings, err := store.Load()
	if err != nil {
		log.WithError(err).Warn("failed to load settings, using defaults")
	}

	tr := i18n.New(settings.Language)
	if cfg.TranslationOverrides != "" {
		if err := tr.LoadOverrides(cfg.TranslationOverrides); err != nil {
			log.WithError(err).Warn("failed to load translation overrides")
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tr.Watch(ctx, cfg.TranslationOverrides); err != nil {
			log.WithError(err).Warn("failed to watch translation overrides")
		}
	}

	notifier := ui.NewNotifier()
	client := api.New(cfg.APIBaseURL, api.WithNotifier(notifier))
	svc := cart.NewService(cart.New(), client)

	log.WithFields(log.Fields{
		"api_url":  cfg.APIBaseURL,
		"language": tr.Locale(),
	}).Info("starting")

	program := tea.NewProgram(ui.NewModel(client, svc, tr, store, notifier), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
