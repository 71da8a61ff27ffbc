// Package stopwatch tracks elapsed centiseconds and lap splits. The engine
// owns a single ten-millisecond schedule while running; each firing adds one
// centisecond, with no drift correction against the wall clock.
package stopwatch

import (
	"fmt"
	"sync"
	"time"
)

// Lap is a recorded checkpoint. LapTime is the delta since the previous lap
// (or since start for the first); TotalTime is the cumulative elapsed value
// at the moment of recording. Laps are immutable once recorded.
type Lap struct {
	ID        int
	LapTime   int
	TotalTime int
}

// EventType defines the type of engine event.
type EventType string

const (
	// EventProgress fires on every elapsed increment.
	EventProgress EventType = "progress"
	// EventStateChange fires on toggle, lap, and reset.
	EventStateChange EventType = "state_change"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Elapsed   int
	IsRunning bool
	At        time.Time
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Engine is the stopwatch state machine.
type Engine struct {
	mu       sync.Mutex
	interval time.Duration
	elapsed  int
	running  bool
	laps     []Lap
	stopCh   chan struct{}
	events   []chan Event
}

// New creates a stopped Engine.
func New(options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = 10 * time.Millisecond
	}
	return &Engine{interval: options.TickInterval}
}

// Subscribe registers a new observer channel.
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

// Toggle flips between running and paused.
func (engine *Engine) Toggle() {
	engine.mu.Lock()
	engine.running = !engine.running
	if engine.running {
		engine.startLocked()
	} else {
		engine.cancelLocked()
	}
	engine.mu.Unlock()

	engine.emitState()
}

// RecordLap appends a lap split at the current elapsed value. Recording at
// zero elapsed is a no-op.
func (engine *Engine) RecordLap() (Lap, bool) {
	engine.mu.Lock()
	if engine.elapsed == 0 {
		engine.mu.Unlock()
		return Lap{}, false
	}

	lastTotal := 0
	if len(engine.laps) > 0 {
		lastTotal = engine.laps[len(engine.laps)-1].TotalTime
	}
	lap := Lap{
		ID:        len(engine.laps) + 1,
		LapTime:   engine.elapsed - lastTotal,
		TotalTime: engine.elapsed,
	}
	engine.laps = append(engine.laps, lap)
	engine.mu.Unlock()

	engine.emitState()
	return lap, true
}

// Reset stops the stopwatch, zeroes the elapsed time, and clears all laps.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.elapsed = 0
	engine.running = false
	engine.laps = nil
	engine.cancelLocked()
	engine.mu.Unlock()

	engine.emitState()
}

// Elapsed returns the current elapsed centiseconds.
func (engine *Engine) Elapsed() int {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.elapsed
}

// Running reports whether the stopwatch is counting.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

// Laps returns a snapshot copy of the recorded laps.
func (engine *Engine) Laps() []Lap {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	laps := make([]Lap, len(engine.laps))
	copy(laps, engine.laps)
	return laps
}

// Stop cancels the schedule and closes observer channels. Used at shutdown.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	engine.running = false
	engine.cancelLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// startLocked establishes the repeating schedule, canceling any prior one so
// at most one schedule is live.
func (engine *Engine) startLocked() {
	engine.cancelLocked()
	stop := make(chan struct{})
	engine.stopCh = stop

	go func() {
		ticker := time.NewTicker(engine.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				engine.Tick()
			}
		}
	}()
}

func (engine *Engine) cancelLocked() {
	if engine.stopCh != nil {
		close(engine.stopCh)
		engine.stopCh = nil
	}
}

// Tick adds one centisecond while running. The engine's own schedule is the
// normal caller; ticks against a paused engine are no-ops.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	engine.elapsed++
	event := Event{
		Type:      EventProgress,
		Elapsed:   engine.elapsed,
		IsRunning: true,
		At:        time.Now(),
	}
	engine.mu.Unlock()

	engine.emit(event)
}

func (engine *Engine) emitState() {
	engine.mu.Lock()
	event := Event{
		Type:      EventStateChange,
		Elapsed:   engine.elapsed,
		IsRunning: engine.running,
		At:        time.Now(),
	}
	engine.mu.Unlock()

	engine.emit(event)
}

func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	channels := append([]chan Event(nil), engine.events...)
	engine.mu.Unlock()

	for _, ch := range channels {
		select {
		case ch <- event:
		default:
		}
	}
}

// Format renders centiseconds as MM:SS.CS. Minutes are unbounded; seconds
// and centiseconds are always two digits.
func Format(centiseconds int) string {
	totalSeconds := centiseconds / 100
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	cs := centiseconds % 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, cs)
}
