package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFormatClock covers the countdown readout, with and without hours.
func TestFormatClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{7325, "02:02:05"},
		{-3, "00:00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, formatClock(tc.seconds), "seconds=%d", tc.seconds)
	}
}
