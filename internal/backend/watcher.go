// Package backend watches the menu catalog file and publishes reloaded
// catalogs to the UI.
package backend

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/menu-stack/internal/logging/events"
	"github.com/atomicstack/menu-stack/internal/menu"
	"go.uber.org/atomic"
)

const minReloadGap = 250 * time.Millisecond

// Event carries a freshly loaded catalog or the error that prevented it.
type Event struct {
	Path    string
	Catalog *menu.Catalog
	Err     error
}

// Loader reads a catalog from disk.
type Loader func(path string) (*menu.Catalog, error)

// Watcher polls a catalog file at a fixed interval and publishes an Event
// whenever its modification time or size changes.
type Watcher struct {
	path     string
	interval time.Duration
	load     Loader

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	wg      sync.WaitGroup
	reloads *atomic.Int64
}

type fileStamp struct {
	mod  int64
	size int64
}

// NewWatcher starts polling path every interval. The file's current state is
// taken as the baseline, so the first Event reflects a later change.
func NewWatcher(path string, interval time.Duration) *Watcher {
	return newWatcher(path, interval, menu.LoadFile)
}

func newWatcher(path string, interval time.Duration, load Loader) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
		reloads:  atomic.NewInt64(0),
	}
	baseline, _ := stamp(path)
	w.wg.Add(1)
	go w.poll(baseline)
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w
}

// Events returns the channel of reload events. It is closed after Stop once
// the poller exits.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Reloads reports how many events have been published.
func (w *Watcher) Reloads() int64 {
	return w.reloads.Load()
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(last fileStamp) {
	defer w.wg.Done()
	gate := newThrottle(minReloadGap)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var statErr, loadErr string
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		current, err := stamp(w.path)
		if err != nil {
			// report a missing file once rather than every tick
			if err.Error() != statErr {
				statErr = err.Error()
				if !w.emit(Event{Path: w.path, Err: err}) {
					return
				}
			}
			continue
		}
		statErr = ""
		if current == last {
			continue
		}
		if !gate.wait(w.ctx) {
			return
		}
		catalog, err := w.load(w.path)
		if err != nil {
			// last stays put so the same version is retried on the next tick
			if err.Error() == loadErr {
				continue
			}
			loadErr = err.Error()
			events.Catalog.Error(w.path, err)
			if !w.emit(Event{Path: w.path, Err: fmt.Errorf("reload %s: %w", w.path, err)}) {
				return
			}
			continue
		}
		last = current
		loadErr = ""
		events.Catalog.Reload(w.path, len(catalog.Menus))
		if !w.emit(Event{Path: w.path, Catalog: catalog}) {
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		w.reloads.Inc()
		return true
	}
}

func stamp(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{mod: info.ModTime().UnixNano(), size: info.Size()}, nil
}
