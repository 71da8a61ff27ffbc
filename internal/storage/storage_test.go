package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"multitimer/internal/core/model"
)

// TestFileBlobStore_GetMissing verifies a missing key reports ErrNotFound.
func TestFileBlobStore_GetMissing(t *testing.T) {
	t.Parallel()

	blobs := NewFileBlobStore(t.TempDir())
	_, err := blobs.Get("nope.json")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileBlobStore_SetGetRoundtrip writes a value and reads it back,
// creating the base directory on demand.
func TestFileBlobStore_SetGetRoundtrip(t *testing.T) {
	t.Parallel()

	baseDir := filepath.Join(t.TempDir(), "nested")
	blobs := NewFileBlobStore(baseDir)

	require.NoError(t, blobs.Set("data.json", []byte(`{"x":1}`)))
	got, err := blobs.Get("data.json")
	require.NoError(t, err)
	require.Equal(t, `{"x":1}`, string(got))
}

// TestTimerRepository_LoadMissing yields an empty collection, not an error.
func TestTimerRepository_LoadMissing(t *testing.T) {
	t.Parallel()

	repo := NewTimerRepository(NewFileBlobStore(t.TempDir()))
	timers, err := repo.Load()
	require.NoError(t, err)
	require.Empty(t, timers)
}

// TestTimerRepository_Roundtrip saves a collection and loads it back intact.
func TestTimerRepository_Roundtrip(t *testing.T) {
	t.Parallel()

	repo := NewTimerRepository(NewFileBlobStore(t.TempDir()))
	want := []model.Timer{
		{
			ID:            "abc",
			Title:         "Tea",
			Description:   "Green",
			Duration:      180,
			RemainingTime: 42,
			IsRunning:     true,
			CreatedAt:     1700000000000,
		},
		{ID: "def", Title: "Eggs", Duration: 300, RemainingTime: 300},
	}

	require.NoError(t, repo.Save(want))
	got, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestTimerRepository_WireFormat pins the serialized field names; stored
// data from older builds must keep loading.
func TestTimerRepository_WireFormat(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	repo := NewTimerRepository(NewFileBlobStore(baseDir))
	require.NoError(t, repo.Save([]model.Timer{{ID: "abc", Title: "Tea", Duration: 60, RemainingTime: 60}}))

	raw, err := os.ReadFile(filepath.Join(baseDir, "timers.json"))
	require.NoError(t, err)
	for _, field := range []string{`"id"`, `"title"`, `"description"`, `"duration"`, `"remainingTime"`, `"isRunning"`, `"createdAt"`} {
		require.Contains(t, string(raw), field)
	}
}

// TestTimerRepository_CorruptData reports a decode error for the caller to
// recover from.
func TestTimerRepository_CorruptData(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "timers.json"), []byte("{not json"), 0o644))

	repo := NewTimerRepository(NewFileBlobStore(baseDir))
	_, err := repo.Load()
	require.Error(t, err)
}

// TestLoadSettings_Defaults returns defaults when no file exists.
func TestLoadSettings_Defaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), settings)
}

// TestSettings_Roundtrip saves and reloads user preferences.
func TestSettings_Roundtrip(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	want := Settings{
		ToneFrequency: 440,
		ToneVolume:    0.8,
		StartHidden:   true,
		LogLevel:      "debug",
	}

	require.NoError(t, SaveSettings(baseDir, want))
	got, err := LoadSettings(baseDir)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestLoadSettings_RejectsOutOfRangeValues keeps defaults for implausible
// tone parameters.
func TestLoadSettings_RejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	raw := "tone_frequency_hz: 99999\ntone_volume: 7\nlog_level: \"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "settings.yaml"), []byte(raw), 0o644))

	settings, err := LoadSettings(baseDir)
	require.NoError(t, err)
	require.Equal(t, DefaultSettings().ToneFrequency, settings.ToneFrequency)
	require.Equal(t, DefaultSettings().ToneVolume, settings.ToneVolume)
	require.Equal(t, DefaultSettings().LogLevel, settings.LogLevel)
}
