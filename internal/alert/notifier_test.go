package alert

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakePlayer counts tone attempts and can fail on demand.
type fakePlayer struct {
	mu    sync.Mutex
	tones int
	err   error
}

func (p *fakePlayer) PlayTone() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tones++
	return p.err
}

func (p *fakePlayer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tones
}

// TestNotifier_PlayIdempotent proves two Play calls without a Stop produce a
// single alert stream: with a long repeat interval, one stream plays exactly
// one tone.
func TestNotifier_PlayIdempotent(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{}
	notifier := NewNotifier(player, Config{RepeatInterval: time.Hour})
	defer notifier.Stop()

	notifier.Play()
	notifier.Play()
	require.True(t, notifier.Playing())

	require.Eventually(t, func() bool {
		return player.count() == 1
	}, 2*time.Second, time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, player.count())
}

// TestNotifier_Repeats checks the loop keeps sounding on schedule until
// stopped.
func TestNotifier_Repeats(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{}
	notifier := NewNotifier(player, Config{RepeatInterval: 10 * time.Millisecond})
	defer notifier.Stop()

	notifier.Play()
	require.Eventually(t, func() bool {
		return player.count() >= 3
	}, 2*time.Second, time.Millisecond)
}

// TestNotifier_StopHaltsTones ensures no tone fires after Stop, and Stop is
// idempotent.
func TestNotifier_StopHaltsTones(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{}
	notifier := NewNotifier(player, Config{RepeatInterval: 10 * time.Millisecond})

	notifier.Play()
	require.Eventually(t, func() bool {
		return player.count() >= 2
	}, 2*time.Second, time.Millisecond)

	notifier.Stop()
	notifier.Stop()
	require.False(t, notifier.Playing())

	time.Sleep(30 * time.Millisecond)
	frozen := player.count()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, frozen, player.count())
}

// TestNotifier_RestartAfterStop allows a new alert stream once the previous
// one was dismissed.
func TestNotifier_RestartAfterStop(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{}
	notifier := NewNotifier(player, Config{RepeatInterval: time.Hour})
	defer notifier.Stop()

	notifier.Play()
	require.Eventually(t, func() bool {
		return player.count() == 1
	}, 2*time.Second, time.Millisecond)

	notifier.Stop()
	notifier.Play()
	require.Eventually(t, func() bool {
		return player.count() == 2
	}, 2*time.Second, time.Millisecond)
}

// TestNotifier_ToneErrorsKeepLoopAlive confirms device failures are retried
// on schedule instead of killing the loop.
func TestNotifier_ToneErrorsKeepLoopAlive(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{err: errors.New("no audio device")}
	notifier := NewNotifier(player, Config{RepeatInterval: 10 * time.Millisecond})
	defer notifier.Stop()

	notifier.Play()
	require.Eventually(t, func() bool {
		return player.count() >= 3
	}, 2*time.Second, time.Millisecond)
	require.True(t, notifier.Playing())
}
