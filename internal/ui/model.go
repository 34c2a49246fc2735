package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/menu-stack/internal/anim"
	"github.com/atomicstack/menu-stack/internal/backend"
	"github.com/atomicstack/menu-stack/internal/menu"
	"github.com/atomicstack/menu-stack/internal/navstack"
	"github.com/atomicstack/menu-stack/internal/panel"
	"github.com/atomicstack/menu-stack/internal/theme"
	uistate "github.com/atomicstack/menu-stack/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const menuHeaderSeparator = " → "

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Catalog    *menu.Catalog
	Root       string
	Width      int
	Height     int
	ShowFooter bool
	Animate    bool
	Anim       anim.Config
	Watcher    *backend.Watcher
}

// Model implements the Bubble Tea model for the stacked menu popup.
type Model struct {
	catalog  *menu.Catalog
	stack    *navstack.Stack
	animator *anim.Animator
	root     string

	// leaving is the last panel removed from the stack while its close
	// transition is still running.
	leaving *panel.Panel

	backdrop bool
	ended    bool
	quitting bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	watcher *backend.Watcher

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers    map[reflect.Type]msgHandler
	unsubscribe []func()
}

// NewModel builds the model and pushes the root menu.
func NewModel(opts Options) *Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = menu.Default()
	}
	root := opts.Root
	if root == "" {
		root = catalog.Root
	}
	m := &Model{
		catalog:    catalog,
		root:       root,
		showFooter: opts.ShowFooter,
		watcher:    opts.Watcher,
	}
	var animator panel.Animator
	if opts.Animate {
		m.animator = anim.New(opts.Anim)
		animator = m.animator
	}
	m.stack = navstack.New(animator, m)
	m.unsubscribe = append(m.unsubscribe,
		m.stack.Subscribe(navstack.EventStackStarted, func() { m.ended = false }),
		m.stack.Subscribe(navstack.EventStackEnded, func() { m.ended = true }),
	)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	if !m.push(root) {
		m.errMsg = "root menu " + root + " not found"
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForCatalogEvent(m.watcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m.finishUpdate(cmds)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// SetVisible implements navstack.Backdrop.
func (m *Model) SetVisible(visible bool) {
	m.backdrop = visible
}

// Close detaches the model from its stack observers.
func (m *Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
}

// Depth reports how many panels are on the stack.
func (m *Model) Depth() int {
	return m.stack.Len()
}

// Kinds lists the stacked panel kinds, bottom first.
func (m *Model) Kinds() []string {
	return m.stack.Kinds()
}

// Ended reports whether the stack has emptied.
func (m *Model) Ended() bool {
	return m.ended
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(anim.FrameMsg{}):     m.handleFrameMsg,
		reflect.TypeOf(catalogEventMsg{}):   m.handleCatalogEventMsg,
		reflect.TypeOf(catalogDoneMsg{}):    m.handleCatalogDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	if m.animator == nil {
		return nil
	}
	m.animator.Step()
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.animator != nil {
		if cmd := m.animator.Cmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.leaving != nil && m.leaving.State() != panel.StateClosing {
		m.leaving = nil
	}
	if m.ended && !m.quitting && !m.animating() {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) animating() bool {
	return m.animator != nil && m.animator.Active()
}
