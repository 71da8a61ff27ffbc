// Package countdown schedules the periodic tick for running timers. Each
// running timer owns exactly one repeating callback with its own cadence;
// there is no global tick clock and no catch-up of missed ticks.
package countdown

import (
	"sync"
	"time"
)

// Config contains runtime options for the Driver.
type Config struct {
	TickInterval time.Duration
}

// Driver maps timer ids to owned, cancelable tick schedules.
type Driver struct {
	mu       sync.Mutex
	interval time.Duration
	tick     func(id string)
	handles  map[string]chan struct{}
}

// New creates a Driver that invokes tick once per interval for every timer
// marked running.
func New(options Config, tick func(id string)) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Driver{
		interval: options.TickInterval,
		tick:     tick,
		handles:  make(map[string]chan struct{}),
	}
}

// SetRunning reconciles the schedule for one timer. Starting cancels any
// prior schedule for that id first, so at most one live callback exists per
// timer. Stopping an id without a schedule is a no-op.
func (driver *Driver) SetRunning(id string, running bool) {
	driver.mu.Lock()
	defer driver.mu.Unlock()

	if !running {
		driver.cancelLocked(id)
		return
	}
	if _, ok := driver.handles[id]; ok {
		// Already scheduled; leave the cadence untouched.
		return
	}
	driver.startLocked(id)
}

// Sync reconciles all schedules against the desired running set. Ids mapped
// to true gain a schedule if they lack one; ids mapped to false or absent
// from the map lose theirs. Live schedules keep their cadence.
func (driver *Driver) Sync(running map[string]bool) {
	driver.mu.Lock()
	defer driver.mu.Unlock()

	for id := range driver.handles {
		if !running[id] {
			driver.cancelLocked(id)
		}
	}
	for id, wantRunning := range running {
		if !wantRunning {
			continue
		}
		if _, ok := driver.handles[id]; !ok {
			driver.startLocked(id)
		}
	}
}

// Restart forces a fresh schedule for the id, resetting its cadence.
func (driver *Driver) Restart(id string) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	driver.cancelLocked(id)
	driver.startLocked(id)
}

// Active reports whether the id currently owns a schedule.
func (driver *Driver) Active(id string) bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	_, ok := driver.handles[id]
	return ok
}

// StopAll cancels every schedule. Used at shutdown.
func (driver *Driver) StopAll() {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	for id := range driver.handles {
		driver.cancelLocked(id)
	}
}

func (driver *Driver) startLocked(id string) {
	stop := make(chan struct{})
	driver.handles[id] = stop

	go func() {
		ticker := time.NewTicker(driver.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				driver.tick(id)
			}
		}
	}()
}

func (driver *Driver) cancelLocked(id string) {
	if stop, ok := driver.handles[id]; ok {
		close(stop)
		delete(driver.handles, id)
	}
}
