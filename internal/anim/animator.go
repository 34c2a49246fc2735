// Package anim drives panel open/close transitions from the Bubble Tea loop.
//
// Each transition is a critically damped harmonica spring moving between 0
// (closed) and 1 (open). The Animator never spawns goroutines: Cmd schedules
// the next frame tick and Step, called from Update when FrameMsg arrives,
// advances every track and fires completion callbacks for settled ones.
package anim

import (
	"math"
	"time"

	"github.com/atomicstack/menu-stack/internal/logging/events"
	"github.com/atomicstack/menu-stack/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"
)

const (
	DefaultFPS       = 60
	DefaultFrequency = 9.0
	DefaultDamping   = 1.0
	DefaultMaxFrames = 90

	settleEpsilon = 0.01
)

// FrameMsg advances running transitions by one frame.
type FrameMsg struct {
	At time.Time
}

// Config tunes the spring and frame rate.
type Config struct {
	FPS       int
	Frequency float64
	Damping   float64
	MaxFrames int
}

type track struct {
	transition panel.Transition
	pos        float64
	vel        float64
	target     float64
	frames     int
	done       func()
}

// Animator implements panel.Animator.
type Animator struct {
	cfg       Config
	spring    harmonica.Spring
	interval  time.Duration
	tracks    map[uuid.UUID]*track
	order     []uuid.UUID
	progress  map[uuid.UUID]float64
	scheduled bool
}

// New creates an Animator. Zero config fields fall back to defaults.
func New(cfg Config) *Animator {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Frequency <= 0 {
		cfg.Frequency = DefaultFrequency
	}
	if cfg.Damping <= 0 {
		cfg.Damping = DefaultDamping
	}
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = DefaultMaxFrames
	}
	return &Animator{
		cfg:      cfg,
		spring:   harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		interval: time.Second / time.Duration(cfg.FPS),
		tracks:   make(map[uuid.UUID]*track),
		progress: make(map[uuid.UUID]float64),
	}
}

// Play starts t for p. A running transition for the same panel is replaced;
// the panel itself discards the replaced completion.
func (a *Animator) Play(p *panel.Panel, t panel.Transition, done func()) {
	id := p.ID()
	from, ok := a.progress[id]
	target := 1.0
	if t == panel.TransitionClose {
		target = 0
		if !ok {
			from = 1
		}
	}
	if _, running := a.tracks[id]; !running {
		a.order = append(a.order, id)
	}
	a.tracks[id] = &track{
		transition: t,
		pos:        from,
		target:     target,
		done:       done,
	}
	a.progress[id] = from
	events.Anim.Play(id.String(), string(t), from, target)
}

// Active reports whether any transition is still running.
func (a *Animator) Active() bool {
	return len(a.tracks) > 0
}

// Progress returns how far open the panel is, from 0 to 1. Panels without a
// recorded transition report 1.
func (a *Animator) Progress(id uuid.UUID) float64 {
	if v, ok := a.progress[id]; ok {
		return v
	}
	return 1
}

// Forget drops any state kept for id.
func (a *Animator) Forget(id uuid.UUID) {
	delete(a.progress, id)
}

// Cmd returns the next frame tick while transitions are running and no frame
// is already pending.
func (a *Animator) Cmd() tea.Cmd {
	if a.scheduled || len(a.tracks) == 0 {
		return nil
	}
	a.scheduled = true
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// Step advances every running transition by one frame and completes the
// ones that settled. It returns the number of completed transitions.
func (a *Animator) Step() int {
	a.scheduled = false
	var finished []*track
	remaining := a.order[:0]
	for _, id := range a.order {
		tr, ok := a.tracks[id]
		if !ok {
			continue
		}
		tr.pos, tr.vel = a.spring.Update(tr.pos, tr.vel, tr.target)
		tr.frames++
		settled := math.Abs(tr.target-tr.pos) < settleEpsilon && math.Abs(tr.vel) < settleEpsilon
		if settled || tr.frames >= a.cfg.MaxFrames {
			if settled {
				events.Anim.Settle(id.String(), string(tr.transition), tr.frames)
			} else {
				events.Anim.Budget(id.String(), string(tr.transition), tr.frames)
			}
			tr.pos = tr.target
			a.progress[id] = tr.pos
			delete(a.tracks, id)
			finished = append(finished, tr)
			continue
		}
		a.progress[id] = clamp(tr.pos)
		remaining = append(remaining, id)
	}
	a.order = remaining
	for _, tr := range finished {
		if tr.done != nil {
			tr.done()
		}
	}
	return len(finished)
}

// Settle runs Step until every transition has completed.
func (a *Animator) Settle() {
	for a.Active() {
		a.Step()
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
