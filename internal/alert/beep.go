package alert

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate   = 44100
	toneDuration = 500 * time.Millisecond
	toneAttack   = 10 * time.Millisecond
)

// BeepPlayer synthesizes a short sine tone with an attack/decay envelope and
// plays it through the system audio device. The envelope avoids the clipping
// artifacts a raw square wave would produce.
type BeepPlayer struct {
	frequency float64
	volume    float64

	initOnce sync.Once
	context  *oto.Context
	ready    chan struct{}
	initErr  error
	pcm      []byte
}

// NewBeepPlayer creates a player for a tone of the given frequency (Hz) and
// peak volume (0..1). The audio device is opened lazily on first use.
func NewBeepPlayer(frequency, volume float64) *BeepPlayer {
	return &BeepPlayer{
		frequency: frequency,
		volume:    volume,
	}
}

// PlayTone sounds one tone. Device errors are returned to the caller; the
// Notifier logs them and keeps its schedule.
func (player *BeepPlayer) PlayTone() error {
	player.initOnce.Do(player.initialize)
	if player.initErr != nil {
		return player.initErr
	}

	<-player.ready

	tone := player.context.NewPlayer(bytes.NewReader(player.pcm))
	tone.Play()

	// Release the device handle once the samples have drained.
	go func() {
		time.Sleep(toneDuration + 100*time.Millisecond)
		_ = tone.Close()
	}()

	return nil
}

func (player *BeepPlayer) initialize() {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		player.initErr = fmt.Errorf("open audio device: %w", err)
		return
	}

	player.context = context
	player.ready = ready
	player.pcm = synthesizeTone(player.frequency, player.volume)
}

// synthesizeTone renders a mono 16-bit sine tone with a linear attack to
// peak volume and a linear decay to silence over the remaining duration.
func synthesizeTone(frequency, volume float64) []byte {
	totalSamples := int(float64(sampleRate) * toneDuration.Seconds())
	attackSamples := int(float64(sampleRate) * toneAttack.Seconds())

	pcm := make([]byte, totalSamples*2)
	for i := 0; i < totalSamples; i++ {
		var envelope float64
		if i < attackSamples {
			envelope = float64(i) / float64(attackSamples)
		} else {
			envelope = 1 - float64(i-attackSamples)/float64(totalSamples-attackSamples)
		}

		t := float64(i) / float64(sampleRate)
		sample := math.Sin(2*math.Pi*frequency*t) * envelope * volume
		value := int16(sample * math.MaxInt16)

		pcm[2*i] = byte(value)
		pcm[2*i+1] = byte(value >> 8)
	}
	return pcm
}
