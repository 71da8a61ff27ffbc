// Package alert owns the completion alert: a repeating tone that starts when
// a countdown reaches zero and keeps sounding until explicitly dismissed.
// One Notifier instance is shared process-wide and injected into consumers.
package alert

import (
	"sync"
	"time"

	"multitimer/internal/logger"
)

// TonePlayer produces a single audible tone.
type TonePlayer interface {
	PlayTone() error
}

// Config contains runtime options for the Notifier.
type Config struct {
	RepeatInterval time.Duration
}

// Notifier runs the repeating alert loop. Play and Stop are both idempotent;
// at most one alert stream exists regardless of how many timers completed.
type Notifier struct {
	mu       sync.Mutex
	player   TonePlayer
	interval time.Duration
	playing  bool
	stop     chan struct{}
}

// NewNotifier creates a Notifier that sounds the given player.
func NewNotifier(player TonePlayer, options Config) *Notifier {
	if options.RepeatInterval <= 0 {
		options.RepeatInterval = time.Second
	}
	return &Notifier{
		player:   player,
		interval: options.RepeatInterval,
	}
}

// Play begins the alert loop. Calling it while already playing is a no-op.
func (notifier *Notifier) Play() {
	notifier.mu.Lock()
	if notifier.playing {
		notifier.mu.Unlock()
		return
	}
	notifier.playing = true
	stop := make(chan struct{})
	notifier.stop = stop
	notifier.mu.Unlock()

	go notifier.loop(stop)
}

// Stop ends the alert loop and cancels the pending next tone. Idempotent.
func (notifier *Notifier) Stop() {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if !notifier.playing {
		return
	}
	notifier.playing = false
	close(notifier.stop)
	notifier.stop = nil
}

// Playing reports whether the alert loop is active.
func (notifier *Notifier) Playing() bool {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.playing
}

// loop attempts one tone per interval until stopped. Tone failures are
// logged per attempt and the loop stays on schedule.
func (notifier *Notifier) loop(stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		if err := notifier.player.PlayTone(); err != nil {
			logger.Errorf("play alert tone: %v", err)
		}

		select {
		case <-stop:
			return
		case <-time.After(notifier.interval):
		}
	}
}
