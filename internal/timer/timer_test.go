package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestTimer() (*Timer, *fakeClock) {
	clock := &fakeClock{now: time.UnixMilli(1756600000000)}
	return New(clock), clock
}

func TestTimer_StartStopScenario(t *testing.T) {
	tm, clock := newTestTimer()

	require.NoError(t, tm.Start())
	assert.Equal(t, Running, tm.State())

	clock.advance(1500 * time.Millisecond)
	assert.Equal(t, int64(1), tm.Elapsed())

	clock.advance(1700 * time.Millisecond) // now at +3200ms
	final, err := tm.Stop()
	require.NoError(t, err)
	assert.Equal(t, int64(3), final)
	assert.Equal(t, Idle, tm.State())
}

func TestTimer_ElapsedZeroBeforeFirstSecond(t *testing.T) {
	tm, clock := newTestTimer()

	require.NoError(t, tm.Start())
	clock.advance(900 * time.Millisecond)

	assert.Equal(t, int64(0), tm.Elapsed())
}

func TestTimer_ElapsedMonotonicPerRun(t *testing.T) {
	tm, clock := newTestTimer()

	require.NoError(t, tm.Start())

	clock.advance(5 * time.Second)
	assert.Equal(t, int64(5), tm.Elapsed())

	// a clock going backwards must not lower the reading
	clock.advance(-2 * time.Second)
	assert.Equal(t, int64(5), tm.Elapsed())
}

func TestTimer_DoubleStart(t *testing.T) {
	tm, _ := newTestTimer()

	require.NoError(t, tm.Start())
	err := tm.Start()

	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Equal(t, Running, tm.State())
}

func TestTimer_StopWhileIdle(t *testing.T) {
	tm, _ := newTestTimer()

	_, err := tm.Stop()

	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestTimer_StopKeepsReadingUntilReset(t *testing.T) {
	tm, clock := newTestTimer()

	require.NoError(t, tm.Start())
	clock.advance(4 * time.Second)

	final, err := tm.Stop()
	require.NoError(t, err)
	require.Equal(t, int64(4), final)

	// the reading survives the stop so a failed submission can retry
	assert.Equal(t, int64(4), tm.Elapsed())

	require.NoError(t, tm.Reset())
	assert.Equal(t, int64(0), tm.Elapsed())
}

func TestTimer_RestartBeginsFromZero(t *testing.T) {
	tm, clock := newTestTimer()

	require.NoError(t, tm.Start())
	clock.advance(10 * time.Second)
	_, err := tm.Stop()
	require.NoError(t, err)
	require.NoError(t, tm.Reset())

	require.NoError(t, tm.Start())
	clock.advance(2 * time.Second)
	assert.Equal(t, int64(2), tm.Elapsed())
}

func TestTimer_ResetWhileRunning(t *testing.T) {
	tm, _ := newTestTimer()

	require.NoError(t, tm.Start())

	assert.ErrorIs(t, tm.Reset(), ErrAlreadyRunning)
}
