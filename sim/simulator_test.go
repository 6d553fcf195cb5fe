package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAfter_NegativeDelayRejected(t *testing.T) {
	s := NewSimulator()

	err := s.ScheduleAfter(-1, func(*Simulator) {})

	var delayErr *InvalidDelayError
	require.True(t, errors.As(err, &delayErr))
	assert.Equal(t, -1.0, delayErr.Delay)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedule_PastEventRejected(t *testing.T) {
	s := NewSimulator()
	s.Clock = 50

	err := s.Schedule(&callbackEvent{time: 40, fn: func(*Simulator) {}})

	var delayErr *InvalidDelayError
	require.True(t, errors.As(err, &delayErr))
	assert.Equal(t, 0, s.Pending())
}

func TestRunUntil_AdvancesClockAndExecutesInOrder(t *testing.T) {
	s := NewSimulator()
	var seen []float64

	for _, at := range []float64{30, 10, 20} {
		require.NoError(t, s.ScheduleAfter(at, func(sim *Simulator) {
			seen = append(seen, sim.Now())
		}))
	}

	require.NoError(t, s.RunUntil(100))

	assert.Equal(t, []float64{10, 20, 30}, seen)
	assert.Equal(t, 100.0, s.Now(), "clock settles at the horizon when the queue drains")
}

func TestRunUntil_StopsBeforeEventsBeyondHorizon(t *testing.T) {
	s := NewSimulator()
	executed := false

	require.NoError(t, s.ScheduleAfter(75, func(*Simulator) { executed = true }))

	require.NoError(t, s.RunUntil(40))

	assert.False(t, executed)
	assert.Equal(t, 1, s.Pending(), "the late event stays queued")
	assert.Equal(t, 40.0, s.Now())
}

func TestRunUntil_EventsCanScheduleMoreEvents(t *testing.T) {
	s := NewSimulator()
	var ticks []float64

	var tick func(*Simulator)
	tick = func(sim *Simulator) {
		ticks = append(ticks, sim.Now())
		sim.mustScheduleAfter(10, tick)
	}
	require.NoError(t, s.ScheduleAfter(10, tick))

	require.NoError(t, s.RunUntil(45))

	assert.Equal(t, []float64{10, 20, 30, 40}, ticks)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{510, "08:30"},
		{1024.7, "17:04"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.minutes))
	}
}
