// Package session persists the navigation history between runs so the menu
// can reopen where the user left it.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/menu-stack/internal/logging/events"
)

// Version is written into every saved history.
const Version = 1

// ErrNoSession is returned by Load when no history has been saved yet.
var ErrNoSession = errors.New("no saved session")

// Entry records one panel of the stack, bottom first.
type Entry struct {
	Kind   string `json:"kind"`
	Cursor int    `json:"cursor"`
	Filter string `json:"filter,omitempty"`
}

// History is the saved stack.
type History struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Panels  []Entry   `json:"panels"`
}

// Kinds lists the panel kinds bottom first.
func (h History) Kinds() []string {
	kinds := make([]string, len(h.Panels))
	for i, e := range h.Panels {
		kinds[i] = e.Kind
	}
	return kinds
}

// DecodeError reports a history file that exists but cannot be parsed.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode session %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Save writes h to path, replacing any previous history atomically.
func Save(path string, h History) error {
	if path == "" {
		return errors.New("session path is empty")
	}
	h.Version = Version
	if h.SavedAt.IsZero() {
		h.SavedAt = time.Now().UTC()
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	events.Session.Save(path, len(h.Panels))
	return nil
}

// Load reads the history at path.
func Load(path string) (History, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return History{}, ErrNoSession
	}
	if err != nil {
		return History{}, fmt.Errorf("read session: %w", err)
	}
	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return History{}, &DecodeError{Path: path, Err: err}
	}
	if h.Version != Version {
		return History{}, &DecodeError{Path: path, Err: fmt.Errorf("unsupported version %d", h.Version)}
	}
	return h, nil
}
