package timerstore

import (
	"time"

	"multitimer/internal/core/model"
)

// EventType defines the type of store event.
type EventType string

const (
	// EventChanged fires after any mutation of the collection.
	EventChanged EventType = "changed"
	// EventCompleted fires once at the tick that clamps a timer to zero.
	EventCompleted EventType = "completed"
)

// Event represents a store update for observers. Timers is a snapshot copy;
// Timer is populated for EventCompleted.
type Event struct {
	Type   EventType
	Timers []model.Timer
	Timer  model.Timer
	At     time.Time
}
