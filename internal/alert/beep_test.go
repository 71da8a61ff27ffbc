package alert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSynthesizeTone_EnvelopeShape checks the rendered PCM starts silent,
// ramps to a bounded peak, and decays back to silence.
func TestSynthesizeTone_EnvelopeShape(t *testing.T) {
	t.Parallel()

	pcm := synthesizeTone(880, 0.5)
	wantSamples := int(float64(sampleRate) * toneDuration.Seconds())
	require.Len(t, pcm, wantSamples*2)

	first := int16(uint16(pcm[0]) | uint16(pcm[1])<<8)
	require.Equal(t, int16(0), first)

	last := int16(uint16(pcm[len(pcm)-2]) | uint16(pcm[len(pcm)-1])<<8)
	require.InDelta(t, 0, last, 400)

	peak := int16(0)
	for i := 0; i < wantSamples; i++ {
		sample := int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
		if sample > peak {
			peak = sample
		}
	}
	require.Greater(t, int(peak), 8000, "tone should be audible at half volume")
	require.LessOrEqual(t, int(peak), 16500, "half volume must not clip")
}

// TestSynthesizeTone_VolumeScales verifies louder settings raise the peak.
func TestSynthesizeTone_VolumeScales(t *testing.T) {
	t.Parallel()

	quiet := synthesizeTone(880, 0.1)
	loud := synthesizeTone(880, 0.9)

	require.Greater(t, peakOf(loud), peakOf(quiet))
}

func peakOf(pcm []byte) int {
	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		sample := int(int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8))
		if sample > peak {
			peak = sample
		}
	}
	return peak
}
