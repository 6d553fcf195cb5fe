package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinic-sim/clinic-sim/sim/triage"
)

// Symptom vocabularies used when synthesizing student cases. The simple list
// holds single-word routine complaints; the complex list holds multi-word
// conditions that push a case toward doctor review.
var (
	simpleSymptoms = []string{
		"cold", "flu", "cough", "headache",
		"fever", "stomach ache", "sore throat",
	}
	complexSymptoms = []string{
		"recurring fever", "severe injury", "chronic pain",
		"mental health issues", "surgery recovery", "infectious disease",
	}
)

// clinicEpoch anchors virtual minute 0 to a concrete intake timestamp so
// certificate record IDs are deterministic for a fixed seed.
var clinicEpoch = time.Date(2025, time.September, 1, 8, 30, 0, 0, time.UTC)

// Generator produces the unending stream of student arrivals. Inter-arrival
// delays follow the time-of-day pattern in Config; case content is drawn
// from an isolated RNG subsystem so the two streams never interfere.
type Generator struct {
	cfg      Config
	arrivals *rand.Rand
	cases    *rand.Rand
	nextID   int
}

// NewGenerator creates a generator backed by the run's partitioned RNG.
func NewGenerator(cfg Config, rng *PartitionedRNG) *Generator {
	return &Generator{
		cfg:      cfg,
		arrivals: rng.ForSubsystem(SubsystemArrivals),
		cases:    rng.ForSubsystem(SubsystemCases),
	}
}

// NextInterArrival draws the delay until the next student, in minutes.
// Peak hours draw Uniform(PeakArrivalMin, PeakArrivalMax); off-peak draws
// the slower off-peak range.
func (g *Generator) NextInterArrival(now float64) float64 {
	lo, hi := g.cfg.OffPeakArrivalMin, g.cfg.OffPeakArrivalMax
	if g.cfg.IsPeakHour(now) {
		lo, hi = g.cfg.PeakArrivalMin, g.cfg.PeakArrivalMax
	}
	return lo + g.arrivals.Float64()*(hi-lo)
}

// NextCase synthesizes the facts for the next arriving student.
//
// Documentation: 80% bring an excuse letter; 90% of those also carry a valid
// ID (no letter means no ID check happens at all). Symptoms: with the
// configured simple-case probability, 1-3 routine symptoms; otherwise 0-2
// routine plus 1-2 complex ones. The illness_type here is the intake clerk's
// rough count-based guess; the triage pipeline reclassifies from content.
func (g *Generator) NextCase(now float64) triage.Facts {
	hasLetter := g.cases.Float64() > 0.2
	validID := hasLetter && g.cases.Float64() > 0.1

	symptoms := g.drawSymptoms()
	illness := triage.ComplexitySimple
	if len(symptoms) > 2 {
		illness = triage.ComplexityComplex
	}

	g.nextID++
	f := triage.Facts{
		StudentID:              fmt.Sprintf("S%04d", g.nextID),
		HasExcuseLetter:        hasLetter,
		ValidID:                triage.Bool(validID),
		Symptoms:               symptoms,
		IllnessType:            illness,
		Timestamp:              clinicEpoch.Add(time.Duration(now * float64(time.Minute))),
		ParentGuardianVerified: validID,
	}
	logrus.Debugf("[%s] synthesized case %s: letter=%v id=%v symptoms=%v",
		FormatClock(now), f.StudentID, hasLetter, validID, symptoms)
	return f
}

func (g *Generator) drawSymptoms() []string {
	if g.cases.Float64() < g.cfg.SimpleCaseProbability {
		return sample(g.cases, simpleSymptoms, 1+g.cases.Intn(3))
	}
	numSimple := g.cases.Intn(3)
	numComplex := 1 + g.cases.Intn(2)
	symptoms := sample(g.cases, simpleSymptoms, numSimple)
	return append(symptoms, sample(g.cases, complexSymptoms, numComplex)...)
}

// sample draws n distinct entries from vocab in random order.
func sample(rng *rand.Rand, vocab []string, n int) []string {
	out := make([]string, 0, n)
	for _, idx := range rng.Perm(len(vocab))[:n] {
		out = append(out, vocab[idx])
	}
	return out
}

// ArrivalEvent represents one student arriving at the clinic. Executing it
// admits the student, spawns their case process, and schedules the next
// arrival, so the stream continues until the horizon cuts it off.
type ArrivalEvent struct {
	time   float64
	clinic *Clinic
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute admits the student and keeps the arrival stream going.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	c := e.clinic
	facts := c.gen.NextCase(e.time)
	logrus.Infof("<< Arrival: %s at %s", facts.StudentID, FormatClock(e.time))

	c.metrics.TotalStudents++
	proc := newCaseProcess(c, facts, e.time)
	proc.start(sim)

	c.scheduleNextArrival(sim)
}
