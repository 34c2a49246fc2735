package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.Animate || cfg.App.FPS != 60 {
		t.Fatalf("expected animation at 60fps by default, got %#v", cfg.App)
	}
	if cfg.App.CatalogPath != "" || cfg.App.WatchInterval != 0 || cfg.App.Restore {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsFromFlags(t *testing.T) {
	args := []string{
		"-catalog", "menus.yaml",
		"-root", " settings ",
		"-width", "60",
		"-height", "20",
		"-footer",
		"-animate=false",
		"-fps", "30",
		"-session", "state.json",
		"-restore",
		"-watch", "2s",
		"-trace",
		"-log-file", "trace.log",
	}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := cfg.App
	if a.CatalogPath != "menus.yaml" || a.RootMenu != "settings" || a.Width != 60 || a.Height != 20 {
		t.Fatalf("unexpected app config %#v", a)
	}
	if !a.ShowFooter || a.Animate || a.FPS != 30 || a.SessionPath != "state.json" || !a.Restore || a.WatchInterval != 2*time.Second {
		t.Fatalf("unexpected app config %#v", a)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "trace.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["watch"] != "2s" || cfg.Flags["animate"] != "false" {
		t.Fatalf("unexpected flag snapshot %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args preserved")
	}
}

func TestLoadArgsFromEnvironment(t *testing.T) {
	env := []string{
		"MENU_STACK_CATALOG=/etc/menus.toml",
		"MENU_STACK_FPS=120",
		"MENU_STACK_ANIMATE=0",
		"MENU_STACK_WATCH=500ms",
		"MENU_STACK_WIDTH=oops",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogPath != "/etc/menus.toml" || cfg.App.FPS != 120 || cfg.App.Animate {
		t.Fatalf("unexpected env config %#v", cfg.App)
	}
	if cfg.App.WatchInterval != 500*time.Millisecond {
		t.Fatalf("expected 500ms watch, got %s", cfg.App.WatchInterval)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected invalid width to fall back, got %d", cfg.App.Width)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-fps", "24"}, []string{"MENU_STACK_FPS=120"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.FPS != 24 {
		t.Fatalf("expected flag to win, got %d", cfg.App.FPS)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected width error")
	}
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	base, _ := LoadArgs(nil, nil)
	cases := map[string]func(*Config){
		"fps zero":           func(c *Config) { c.App.FPS = 0 },
		"fps too high":       func(c *Config) { c.App.FPS = 1000 },
		"watch without file": func(c *Config) { c.App.WatchInterval = time.Second },
		"restore no session": func(c *Config) { c.App.Restore = true },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
