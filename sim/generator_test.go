package sim

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinic-sim/clinic-sim/sim/triage"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(DefaultConfig(), NewPartitionedRNG(NewSimulationKey(seed)))
}

func TestNextInterArrival_PeakAndOffPeakRanges(t *testing.T) {
	g := newTestGenerator(42)

	for i := 0; i < 200; i++ {
		peak := g.NextInterArrival(10.5 * 60)
		assert.GreaterOrEqual(t, peak, 5.0)
		assert.Less(t, peak, 10.0)

		offPeak := g.NextInterArrival(9 * 60)
		assert.GreaterOrEqual(t, offPeak, 15.0)
		assert.Less(t, offPeak, 25.0)
	}
}

func TestNextCase_SequentialStudentIDs(t *testing.T) {
	g := newTestGenerator(42)

	for i := 1; i <= 5; i++ {
		f := g.NextCase(float64(i))
		assert.Equal(t, fmt.Sprintf("S%04d", i), f.StudentID)
	}
}

func TestNextCase_WellFormedFacts(t *testing.T) {
	g := newTestGenerator(42)

	for i := 0; i < 500; i++ {
		f := g.NextCase(float64(i))

		require.NotEmpty(t, f.Symptoms)
		require.NotNil(t, f.ValidID)
		if !f.HasExcuseLetter {
			assert.False(t, *f.ValidID, "an ID is only checked when a letter is presented")
		}

		wantIllness := triage.ComplexitySimple
		if len(f.Symptoms) > 2 {
			wantIllness = triage.ComplexityComplex
		}
		assert.Equal(t, wantIllness, f.IllnessType)

		seen := map[string]bool{}
		for _, s := range f.Symptoms {
			assert.False(t, seen[s], "symptoms must be distinct within a case")
			seen[s] = true
		}
	}
}

func TestNextCase_TimestampAnchoredToEpoch(t *testing.T) {
	g := newTestGenerator(42)

	f := g.NextCase(45)

	assert.Equal(t, clinicEpoch.Add(45*time.Minute), f.Timestamp)
}

func TestGenerator_DeterministicForFixedSeed(t *testing.T) {
	a := newTestGenerator(7)
	b := newTestGenerator(7)

	for i := 0; i < 100; i++ {
		now := float64(i * 3)
		assert.Equal(t, a.NextInterArrival(now), b.NextInterArrival(now))
		assert.Equal(t, a.NextCase(now), b.NextCase(now))
	}
}
