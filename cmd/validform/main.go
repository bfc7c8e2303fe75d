package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/validform/internal/config"
	"github.com/jask/validform/internal/database"
	"github.com/jask/validform/internal/database/repository"
	"github.com/jask/validform/internal/tui"
)

func main() {
	check := flag.Bool("check", false, "validate configuration and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	if err := cfg.Check(); err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	if *check {
		log.Info("configuration ok", "fields", len(cfg.Fields))
		return
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatal("mkdir db dir", "err", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("open db", "err", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("migrate", "err", err)
	}

	repo := repository.NewSubmissionRepo(db)

	form, err := tui.NewForm(ctx, cfg, repo)
	if err != nil {
		log.Fatal("build form", "err", err)
	}
	if _, err := tea.NewProgram(form, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal("run", "err", err)
	}
}
