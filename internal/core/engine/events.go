package engine

import (
	"time"

	"tomatick/internal/core/model"
)

// EventType defines the type of engine event.
type EventType string

const (
	// EventStateChange reports a command-driven change: started, paused,
	// reset, skipped, or acknowledged.
	EventStateChange EventType = "state_change"
	// EventProgress reports one second of countdown progress.
	EventProgress EventType = "progress"
	// EventPhaseEnded reports that a phase ran out on its own and the
	// engine is waiting for acknowledgement before resuming.
	EventPhaseEnded EventType = "phase_ended"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Phase     model.Phase
	Remaining time.Duration
	Active    bool
	Sessions  int
	Message   string
	At        time.Time
}
