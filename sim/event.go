package sim

// Event defines the interface for all simulation events. Each event carries
// an absolute virtual timestamp (in minutes) and an Execute method that
// advances simulation state when the scheduler pops it.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// callbackEvent resumes a suspended continuation at a scheduled time. Case
// processes are explicit state machines; each suspension point (waiting out a
// service time, or waiting for a resource grant) is reified as one of these.
type callbackEvent struct {
	time float64
	fn   func(*Simulator)
}

func (e *callbackEvent) Timestamp() float64 { return e.time }

func (e *callbackEvent) Execute(sim *Simulator) { e.fn(sim) }
