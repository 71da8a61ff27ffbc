package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAcquireSingleInstance_SecondAcquireFails verifies the lock is held
// until released.
func TestAcquireSingleInstance_SecondAcquireFails(t *testing.T) {
	t.Parallel()

	guard, err := AcquireSingleInstance("multitimer-test-lock")
	require.NoError(t, err)

	_, err = AcquireSingleInstance("multitimer-test-lock")
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())

	guard, err = AcquireSingleInstance("multitimer-test-lock")
	require.NoError(t, err)
	require.NoError(t, guard.Release())
}

// TestAcquireSingleInstance_DistinctNames allows different apps to hold
// locks simultaneously.
func TestAcquireSingleInstance_DistinctNames(t *testing.T) {
	t.Parallel()

	first, err := AcquireSingleInstance("multitimer-test-a")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, first.Release())
	}()

	second, err := AcquireSingleInstance("multitimer-test-b")
	require.NoError(t, err)
	require.NoError(t, second.Release())
}
