package menu

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected default catalog to validate: %v", err)
	}
	root, ok := c.RootDefinition()
	if !ok || root.Kind != "main" {
		t.Fatalf("expected main root, got %#v", root)
	}
	tpl, ok := c.Template("settings")
	if !ok {
		t.Fatalf("expected settings template")
	}
	if tpl.Kind != "settings" || tpl.Title != "Settings" {
		t.Fatalf("unexpected template %#v", tpl)
	}
	if _, ok := c.Template("missing"); ok {
		t.Fatalf("did not expect template for unknown kind")
	}
}

func TestValidateReportsProblems(t *testing.T) {
	c := NewCatalog("nope",
		&Definition{Kind: "a", Items: []Item{
			{ID: "x", Target: "ghost"},
			{ID: "x", Label: "dup"},
			{ID: "y", Action: "explode"},
			{ID: "z", Target: "a", Action: ActionBack},
		}},
	)
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
	for _, fragment := range []string{"unknown menu \"ghost\"", "\"x\" declared twice", "unknown action", "both target and action", "root menu \"nope\""} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected %q in %v", fragment, err)
		}
	}
}

func TestValidateNormalisesItems(t *testing.T) {
	c := NewCatalog("a", &Definition{Kind: "a", Items: []Item{{ID: " b ", Action: " BACK "}}})
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := c.Menus[0].Items[0]
	if item.ID != "b" || item.Label != "b" || item.Action != ActionBack {
		t.Fatalf("unexpected normalised item %#v", item)
	}
}

func TestDisplayTitleFallsBackToKind(t *testing.T) {
	def := &Definition{Kind: "audio"}
	if def.DisplayTitle() != "audio" {
		t.Fatalf("expected kind fallback, got %q", def.DisplayTitle())
	}
}

const yamlCatalog = `
root: home
menus:
  - kind: home
    title: Home
    items:
      - id: options
        label: Options
        target: options
      - id: quit
        label: Quit
        action: quit
  - kind: options
    title: Options
    items:
      - id: back
        label: Back
        action: back
`

const tomlCatalog = `
root = "home"

[[menus]]
kind = "home"
title = "Home"

  [[menus.items]]
  id = "options"
  label = "Options"
  target = "options"

[[menus]]
kind = "options"
title = "Options"

  [[menus.items]]
  id = "back"
  label = "Back"
  action = "back"
`

func TestLoadFileYAMLAndTOML(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{"catalog.yaml": yamlCatalog, "catalog.toml": tomlCatalog} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if c.Root != "home" {
			t.Fatalf("%s: expected root home, got %q", name, c.Root)
		}
		def, ok := c.Find("options")
		if !ok || len(def.Items) != 1 || def.Items[0].Action != ActionBack {
			t.Fatalf("%s: unexpected options menu %#v", name, def)
		}
		home, _ := c.Find("home")
		if home.Items[0].Target != "options" {
			t.Fatalf("%s: expected target options, got %#v", name, home.Items[0])
		}
	}
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "catalog.json")); err == nil {
		t.Fatalf("expected extension error")
	}
}

func TestLoadFileRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := "root: a\nmenus:\n  - kind: a\n    colour: red\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestLoadFileRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	body := "root = \"missing\"\n\n[[menus]]\nkind = \"a\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFile(path)
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}
