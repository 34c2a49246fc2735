package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/menu-stack/internal/anim"
	"github.com/atomicstack/menu-stack/internal/backend"
	"github.com/atomicstack/menu-stack/internal/logging"
	"github.com/atomicstack/menu-stack/internal/logging/events"
	"github.com/atomicstack/menu-stack/internal/menu"
	"github.com/atomicstack/menu-stack/internal/session"
	"github.com/atomicstack/menu-stack/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath   string
	RootMenu      string
	Width         int
	Height        int
	ShowFooter    bool
	Animate       bool
	FPS           int
	SessionPath   string
	Restore       bool
	WatchInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, watcher, err := prepare(cfg)
	if err != nil {
		return err
	}
	defer model.Close()
	if watcher != nil {
		defer watcher.Stop()
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if saveErr := saveSession(cfg, model); saveErr != nil {
		logging.Error(saveErr)
	}
	events.App.Exit(model.Depth(), err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func prepare(cfg Config) (*ui.Model, *backend.Watcher, error) {
	catalog, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	root := cfg.RootMenu
	if root == "" {
		root = catalog.Root
	}
	if _, ok := catalog.Find(root); !ok {
		return nil, nil, fmt.Errorf("root menu %q is not defined", root)
	}
	var watcher *backend.Watcher
	if cfg.CatalogPath != "" && cfg.WatchInterval > 0 {
		watcher = backend.NewWatcher(cfg.CatalogPath, cfg.WatchInterval)
	}
	model := ui.NewModel(ui.Options{
		Catalog:    catalog,
		Root:       root,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Animate:    cfg.Animate,
		Anim:       anim.Config{FPS: cfg.FPS},
		Watcher:    watcher,
	})
	if cfg.Restore && cfg.SessionPath != "" {
		if err := restoreSession(cfg.SessionPath, model); err != nil {
			logging.Error(err)
		}
	}
	return model, watcher, nil
}

// LoadCatalog reads the catalog at path, or returns the built-in catalog
// when path is empty.
func LoadCatalog(path string) (*menu.Catalog, error) {
	if path == "" {
		catalog := menu.Default()
		events.Catalog.Load("(built-in)", len(catalog.Menus))
		return catalog, nil
	}
	catalog, err := menu.LoadFile(path)
	if err != nil {
		events.Catalog.Error(path, err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	events.Catalog.Load(path, len(catalog.Menus))
	return catalog, nil
}

func restoreSession(path string, model *ui.Model) error {
	history, err := session.Load(path)
	if errors.Is(err, session.ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}
	restored, skipped := model.Restore(history)
	events.Session.Restore(path, restored, skipped)
	return nil
}

func saveSession(cfg Config, model *ui.Model) error {
	if cfg.SessionPath == "" {
		return nil
	}
	return session.Save(cfg.SessionPath, model.History())
}
