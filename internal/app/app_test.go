package app

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/menu-stack/internal/logging"
	"github.com/atomicstack/menu-stack/internal/menu"
	"github.com/atomicstack/menu-stack/internal/session"
)

func TestLoadCatalogDefaultsToBuiltIn(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Root != "main" {
		t.Fatalf("expected built-in root, got %q", catalog.Root)
	}
}

func TestLoadCatalogWrapsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("root: nowhere\nmenus: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCatalog(path); !errors.Is(err, menu.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestLoadCatalogTracesEachLoadOnce(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "trace.log")
	logging.Configure(logPath)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("root: home\nmenus:\n  - kind: home\n    items:\n      - id: quit\n        action: quit\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("root: nowhere\nmenus: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCatalog(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := LoadCatalog(bad); err == nil {
		t.Fatalf("expected error for %s", bad)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	counts := map[string]int{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode trace line %q: %v", line, err)
		}
		counts[entry.Event]++
	}
	if counts["catalog.load"] != 1 || counts["catalog.error"] != 1 {
		t.Fatalf("expected one load and one error trace, got %v", counts)
	}
}

func TestPrepareRejectsUnknownRoot(t *testing.T) {
	if _, _, err := prepare(Config{RootMenu: "nowhere"}); err == nil {
		t.Fatalf("expected unknown root error")
	}
}

func TestPrepareUsesRootOverride(t *testing.T) {
	model, watcher, err := prepare(Config{RootMenu: "settings"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer model.Close()
	if watcher != nil {
		t.Fatalf("expected no watcher without a catalog path")
	}
	if got := model.Kinds(); !reflect.DeepEqual(got, []string{"settings"}) {
		t.Fatalf("expected settings root, got %v", got)
	}
}

func TestPrepareRestoresSavedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	saved := session.History{Panels: []session.Entry{{Kind: "main", Cursor: 1}, {Kind: "settings"}, {Kind: "removed"}}}
	if err := session.Save(path, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	model, _, err := prepare(Config{SessionPath: path, Restore: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer model.Close()
	if got := model.Kinds(); !reflect.DeepEqual(got, []string{"main", "settings"}) {
		t.Fatalf("expected restored stack, got %v", got)
	}

	if err := saveSession(Config{SessionPath: path}, model); err != nil {
		t.Fatalf("save session: %v", err)
	}
	reloaded, err := session.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(reloaded.Kinds(), []string{"main", "settings"}) {
		t.Fatalf("unexpected saved kinds %v", reloaded.Kinds())
	}
}

func TestPrepareIgnoresMissingSession(t *testing.T) {
	model, _, err := prepare(Config{SessionPath: filepath.Join(t.TempDir(), "none.json"), Restore: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer model.Close()
	if got := model.Kinds(); !reflect.DeepEqual(got, []string{"main"}) {
		t.Fatalf("expected root only, got %v", got)
	}
}

func TestPrepareStartsWatcherForCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	body := "root = \"home\"\n\n[[menus]]\nkind = \"home\"\n\n  [[menus.items]]\n  id = \"quit\"\n  action = \"quit\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	model, watcher, err := prepare(Config{CatalogPath: path, WatchInterval: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer model.Close()
	if watcher == nil {
		t.Fatalf("expected watcher")
	}
	watcher.Stop()
	watcher.Wait()
	if got := model.Kinds(); !reflect.DeepEqual(got, []string{"home"}) {
		t.Fatalf("expected home root, got %v", got)
	}
}
