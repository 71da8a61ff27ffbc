// Package timerstore owns the countdown timer collection. All mutations go
// through the Store, which persists the full collection synchronously after
// each change and notifies observers.
package timerstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"multitimer/internal/core/model"
	"multitimer/internal/logger"
)

// Persister saves the full timer collection after a mutation.
type Persister interface {
	Save(timers []model.Timer) error
}

// Store is the authoritative owner of the timer collection.
type Store struct {
	mu        sync.Mutex
	timers    []model.Timer
	persister Persister
	events    []chan Event
}

// New creates a Store seeded with an initial collection, typically the
// result of TimerRepository.Load.
func New(persister Persister, initial []model.Timer) *Store {
	timers := make([]model.Timer, len(initial))
	copy(timers, initial)
	return &Store{
		persister: persister,
		timers:    timers,
	}
}

// Subscribe registers a new observer channel.
func (store *Store) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	store.mu.Lock()
	store.events = append(store.events, ch)
	store.mu.Unlock()
	return ch
}

// Close shuts down all observer channels.
func (store *Store) Close() {
	store.mu.Lock()
	events := store.events
	store.events = nil
	store.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Timers returns a snapshot copy of the collection.
func (store *Store) Timers() []model.Timer {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.snapshotLocked()
}

// Add creates a timer from the given fields and appends it to the
// collection. Input is trusted; validation is the caller's concern.
func (store *Store) Add(fields model.Fields) model.Timer {
	timer := model.Timer{
		ID:            uuid.NewString(),
		Title:         fields.Title,
		Description:   fields.Description,
		Duration:      fields.Duration,
		RemainingTime: fields.Duration,
		IsRunning:     false,
		CreatedAt:     time.Now().UnixMilli(),
	}

	store.mu.Lock()
	store.timers = append(store.timers, timer)
	store.persistLocked()
	events := store.changedEventLocked()
	store.mu.Unlock()

	store.emit(events...)
	return timer
}

// Delete removes the timer with the given id. Removing an unknown id keeps
// the collection unchanged but still persists the snapshot.
func (store *Store) Delete(id string) {
	store.mu.Lock()
	kept := store.timers[:0]
	for _, timer := range store.timers {
		if timer.ID != id {
			kept = append(kept, timer)
		}
	}
	store.timers = kept
	store.persistLocked()
	events := store.changedEventLocked()
	store.mu.Unlock()

	store.emit(events...)
}

// Toggle flips the running state of the named timer. Unknown ids are a
// no-op.
func (store *Store) Toggle(id string) {
	store.mu.Lock()
	timer := store.findLocked(id)
	if timer == nil {
		store.mu.Unlock()
		return
	}
	timer.IsRunning = !timer.IsRunning
	store.persistLocked()
	events := store.changedEventLocked()
	store.mu.Unlock()

	store.emit(events...)
}

// Tick applies the one-second countdown transition. It decrements only when
// the timer exists, is running, and has time remaining; the decrement that
// reaches zero clamps RemainingTime and stops the timer in the same step.
// Everything else is a no-op with no persistence write, so repeated calls
// after completion are harmless.
func (store *Store) Tick(id string) {
	store.mu.Lock()
	timer := store.findLocked(id)
	if timer == nil || !timer.IsRunning || timer.RemainingTime <= 0 {
		store.mu.Unlock()
		return
	}

	timer.RemainingTime--
	completed := false
	if timer.RemainingTime <= 0 {
		timer.RemainingTime = 0
		timer.IsRunning = false
		completed = true
	}
	store.persistLocked()

	events := store.changedEventLocked()
	if completed {
		events = append(events, Event{
			Type:  EventCompleted,
			Timer: *timer,
			At:    time.Now(),
		})
	}
	store.mu.Unlock()

	store.emit(events...)
}

// Restart resets the named timer to its full duration, stopped.
func (store *Store) Restart(id string) {
	store.mu.Lock()
	timer := store.findLocked(id)
	if timer == nil {
		store.mu.Unlock()
		return
	}
	timer.RemainingTime = timer.Duration
	timer.IsRunning = false
	store.persistLocked()
	events := store.changedEventLocked()
	store.mu.Unlock()

	store.emit(events...)
}

// Edit applies the provided field updates, then resets the remaining time to
// the (possibly updated) duration and stops the timer. Edits never apply to
// a running countdown in place.
func (store *Store) Edit(id string, updates model.Updates) {
	store.mu.Lock()
	timer := store.findLocked(id)
	if timer == nil {
		store.mu.Unlock()
		return
	}
	if updates.Title != nil {
		timer.Title = *updates.Title
	}
	if updates.Description != nil {
		timer.Description = *updates.Description
	}
	if updates.Duration != nil {
		timer.Duration = *updates.Duration
	}
	timer.RemainingTime = timer.Duration
	timer.IsRunning = false
	store.persistLocked()
	events := store.changedEventLocked()
	store.mu.Unlock()

	store.emit(events...)
}

func (store *Store) findLocked(id string) *model.Timer {
	for i := range store.timers {
		if store.timers[i].ID == id {
			return &store.timers[i]
		}
	}
	return nil
}

func (store *Store) snapshotLocked() []model.Timer {
	snapshot := make([]model.Timer, len(store.timers))
	copy(snapshot, store.timers)
	return snapshot
}

// persistLocked writes the full collection through the persister. Failures
// are logged and swallowed: in-memory state stays authoritative for the
// session.
func (store *Store) persistLocked() {
	if store.persister == nil {
		return
	}
	if err := store.persister.Save(store.snapshotLocked()); err != nil {
		logger.Errorf("persist timers: %v", err)
	}
}

func (store *Store) changedEventLocked() []Event {
	return []Event{{
		Type:   EventChanged,
		Timers: store.snapshotLocked(),
		At:     time.Now(),
	}}
}

func (store *Store) emit(events ...Event) {
	store.mu.Lock()
	channels := append([]chan Event(nil), store.events...)
	store.mu.Unlock()

	for _, event := range events {
		for _, ch := range channels {
			select {
			case ch <- event:
			default:
			}
		}
	}
}
