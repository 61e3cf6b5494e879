// Package engine implements the pomodoro countdown state machine: fixed-length
// work and break phases, automatic transitions with acknowledgement, session
// counting, and a long break every N completed work sessions.
package engine

import (
	"fmt"
	"sync"
	"time"

	"tomatick/internal/core/model"
)

// Notification messages raised when a phase runs out.
const (
	MessageLongBreak  = "Time for a long break!"
	MessageShortBreak = "Time for a short break!"
	MessageWork       = "Time to work!"
)

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Snapshot is a consistent read-only view of the engine state.
type Snapshot struct {
	Phase             model.Phase
	Remaining         time.Duration
	Active            bool
	CompletedSessions int

	// PendingPhase is empty unless a phase ended automatically and the
	// engine is waiting for Acknowledge.
	PendingPhase   model.Phase
	PendingMessage string

	// Clock is the remaining time rendered as zero-padded "MM:SS".
	Clock string
}

// Pending reports whether a phase-end notification awaits acknowledgement.
func (snapshot Snapshot) Pending() bool {
	return snapshot.PendingPhase != ""
}

// Engine is the state machine owning the pomodoro cycle. All commands are
// serialized through a single mutex; calls made out of precondition degrade
// to no-ops rather than errors.
type Engine struct {
	mu             sync.Mutex
	config         model.Config
	options        Config
	phase          model.Phase
	remaining      time.Duration
	active         bool
	sessions       int
	pendingPhase   model.Phase
	pendingMessage string
	events         []chan Event
	tickStop       chan struct{}
	closed         bool
}

// New creates an Engine at the start of a work phase, not counting down.
func New(config model.Config, options Config) *Engine {
	config = config.Normalize()
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Engine{
		config:    config,
		options:   options,
		phase:     model.PhaseWork,
		remaining: config.WorkDuration,
	}
}

// Subscribe registers a new observer channel. Events are delivered
// best-effort: a full channel drops the event instead of blocking.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Start resumes the countdown. Rejected while a phase-end notification is
// pending; idempotent if already running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.closed || engine.active || engine.pendingPhase != "" {
		engine.mu.Unlock()
		return
	}
	engine.active = true
	engine.startTickerLocked()
	engine.emitLocked(engine.stateChangeLocked())
	engine.mu.Unlock()
}

// Pause freezes the countdown. Idempotent if already inactive.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	if engine.closed || !engine.active {
		engine.mu.Unlock()
		return
	}
	engine.active = false
	engine.stopTickerLocked()
	engine.emitLocked(engine.stateChangeLocked())
	engine.mu.Unlock()
}

// Reset returns the engine to a fresh work phase with zero completed
// sessions, discarding any pending notification. Always succeeds.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.phase = model.PhaseWork
	engine.remaining = engine.config.WorkDuration
	engine.active = false
	engine.sessions = 0
	engine.pendingPhase = ""
	engine.pendingMessage = ""
	engine.stopTickerLocked()
	engine.emitLocked(engine.stateChangeLocked())
	engine.mu.Unlock()
}

// Skip forces the phase transition immediately and resumes the countdown in
// the new phase without raising a notification. A session is credited when
// the phase being left is work, with the same long-break selection as an
// automatic completion. A pending notification is discarded first, so
// skipping while one is shown advances past the already-selected phase.
func (engine *Engine) Skip() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.pendingPhase = ""
	engine.pendingMessage = ""
	engine.advancePhaseLocked()
	if !engine.active {
		engine.active = true
		engine.startTickerLocked()
	}
	engine.emitLocked(engine.stateChangeLocked())
	engine.mu.Unlock()
}

// Acknowledge clears the pending phase-end notification and resumes the
// countdown in the new phase. No-op when nothing is pending.
func (engine *Engine) Acknowledge() {
	engine.mu.Lock()
	if engine.closed || engine.pendingPhase == "" {
		engine.mu.Unlock()
		return
	}
	engine.pendingPhase = ""
	engine.pendingMessage = ""
	engine.active = true
	engine.startTickerLocked()
	engine.emitLocked(engine.stateChangeLocked())
	engine.mu.Unlock()
}

// Tick advances the countdown by one second. No-op unless the engine is
// active with no pending notification, so a tick delivered after a stop can
// never mutate state.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	if engine.closed || !engine.active || engine.pendingPhase != "" {
		engine.mu.Unlock()
		return
	}
	if engine.remaining > time.Second {
		engine.remaining -= time.Second
		engine.emitLocked(Event{
			Type:      EventProgress,
			Phase:     engine.phase,
			Remaining: engine.remaining,
			Active:    true,
			Sessions:  engine.sessions,
			At:        time.Now(),
		})
		engine.mu.Unlock()
		return
	}
	engine.remaining = 0
	engine.completePhaseLocked()
	engine.mu.Unlock()
}

// Snapshot returns a copy of the current state for rendering.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return Snapshot{
		Phase:             engine.phase,
		Remaining:         engine.remaining,
		Active:            engine.active,
		CompletedSessions: engine.sessions,
		PendingPhase:      engine.pendingPhase,
		PendingMessage:    engine.pendingMessage,
		Clock:             FormatClock(engine.remaining),
	}
}

// Close stops the ticker and closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.active = false
	engine.stopTickerLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) completePhaseLocked() {
	engine.active = false
	engine.stopTickerLocked()
	next, message := engine.advancePhaseLocked()
	engine.pendingPhase = next
	engine.pendingMessage = message
	engine.emitLocked(Event{
		Type:      EventPhaseEnded,
		Phase:     next,
		Remaining: engine.remaining,
		Sessions:  engine.sessions,
		Message:   message,
		At:        time.Now(),
	})
}

// advancePhaseLocked applies the phase-selection rule shared by automatic
// completion and Skip: leaving work credits a session and picks a long break
// on every LongBreakInterval-th one, leaving a break always returns to work.
func (engine *Engine) advancePhaseLocked() (model.Phase, string) {
	var next model.Phase
	var message string
	if engine.phase == model.PhaseWork {
		engine.sessions++
		if engine.sessions%engine.config.LongBreakInterval == 0 {
			next = model.PhaseLongBreak
			message = MessageLongBreak
		} else {
			next = model.PhaseShortBreak
			message = MessageShortBreak
		}
	} else {
		next = model.PhaseWork
		message = MessageWork
	}
	engine.phase = next
	engine.remaining = engine.config.PhaseDuration(next)
	return next, message
}

// startTickerLocked launches the ticking goroutine. At most one exists at a
// time: transitions to inactive close its stop channel before a new one can
// be created.
func (engine *Engine) startTickerLocked() {
	if engine.tickStop != nil {
		return
	}
	stop := make(chan struct{})
	engine.tickStop = stop
	go engine.run(stop)
}

func (engine *Engine) stopTickerLocked() {
	if engine.tickStop == nil {
		return
	}
	close(engine.tickStop)
	engine.tickStop = nil
}

func (engine *Engine) run(stop <-chan struct{}) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			engine.Tick()
		}
	}
}

func (engine *Engine) stateChangeLocked() Event {
	return Event{
		Type:      EventStateChange,
		Phase:     engine.phase,
		Remaining: engine.remaining,
		Active:    engine.active,
		Sessions:  engine.sessions,
		Message:   engine.pendingMessage,
		At:        time.Now(),
	}
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// FormatClock renders a remaining duration as zero-padded "MM:SS".
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
