package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/fieldkit/internal/config"
	"github.com/jask/fieldkit/internal/demo"
	"github.com/jask/fieldkit/internal/logutil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logutil.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	users, err := demo.LoadUsers(cfg.Data.Path)
	if err != nil {
		log.Fatalf("users: %v", err)
	}

	app, err := demo.New(cfg.UI, users, logger)
	if err != nil {
		log.Fatalf("demo: %v", err)
	}

	logger.Info("starting widget demo", zap.Int("rows", len(users)), zap.String("selectable", cfg.UI.Selectable))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Printf("error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
