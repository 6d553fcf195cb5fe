package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/clinic-sim/clinic-sim/sim/triage"
)

// Clinic wires the simulation kernel to the clinic domain: the staff
// resource pools, the arrival generator, the triage pipeline, the statistics
// aggregate, and the observer boundary.
type Clinic struct {
	cfg      Config
	sim      *Simulator
	gen      *Generator
	pipeline *triage.Pipeline
	metrics  *Metrics
	notifier *Notifier

	nurses  *ResourcePool
	doctors *ResourcePool
	staff   *ResourcePool
}

// NewClinic validates cfg and assembles a ready-to-run clinic.
func NewClinic(cfg Config, cb Callback) (*Clinic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	return &Clinic{
		cfg:      cfg,
		sim:      NewSimulator(),
		gen:      NewGenerator(cfg, rng),
		pipeline: triage.NewPipeline(),
		metrics:  &Metrics{},
		notifier: NewNotifier(cb),
		nurses:   NewResourcePool("nurse", cfg.NurseCapacity),
		doctors:  NewResourcePool("doctor", cfg.DoctorCapacity),
		staff:    NewResourcePool("staff", cfg.StaffCapacity),
	}, nil
}

// Simulator exposes the underlying scheduler, mainly for tests that drive
// the clinic event by event.
func (c *Clinic) Simulator() *Simulator { return c.sim }

// Metrics exposes the live aggregate; external readers should use Snapshot.
func (c *Clinic) Metrics() *Metrics { return c.metrics }

// scheduleNextArrival books the next ArrivalEvent. The generator produces an
// unending stream; RunUntil simply stops consuming it at the horizon.
func (c *Clinic) scheduleNextArrival(sim *Simulator) {
	delay := c.gen.NextInterArrival(sim.Now())
	if err := sim.Schedule(&ArrivalEvent{time: sim.Now() + delay, clinic: c}); err != nil {
		panic(err)
	}
}

// Run executes the simulation until the configured duration and returns the
// final statistics. In-flight cases at the horizon are abandoned without
// completion accounting, matching a clinic closing its doors.
func (c *Clinic) Run() (stats FinalStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = &InvariantViolationError{Detail: "unexpected fault in event loop"}
			}
			stats = FinalStats{}
			logrus.Errorf("simulation aborted: %v", err)
		}
	}()

	c.scheduleNextArrival(c.sim)
	if err := c.sim.RunUntil(c.cfg.DurationMinutes); err != nil {
		return FinalStats{}, err
	}

	logrus.Infof("[%s] simulation ended: %d arrivals, %d still in system",
		FormatClock(c.sim.Now()), c.metrics.TotalStudents, c.metrics.StudentsInSystem)
	return c.metrics.Final(), nil
}

// Run is the simulation entry point: validate, build, run, report. On any
// configuration or invariant failure it returns zeroed statistics alongside
// the error.
func Run(cfg Config, cb Callback) (FinalStats, error) {
	clinic, err := NewClinic(cfg, cb)
	if err != nil {
		return FinalStats{}, err
	}
	return clinic.Run()
}
