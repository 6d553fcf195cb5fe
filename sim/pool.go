package sim

import "github.com/sirupsen/logrus"

// ResourcePool models one staff role (nurse, doctor, clerical staff) with a
// fixed capacity and a FIFO queue of waiting case processes. Grants are
// strictly in request order among waiters; a later arrival never skips ahead.
type ResourcePool struct {
	name     string
	capacity int
	held     int
	waiters  []func(*Simulator)
}

// NewResourcePool creates a pool with the given capacity. Capacity is
// validated at the configuration boundary; this constructor trusts it.
func NewResourcePool(name string, capacity int) *ResourcePool {
	return &ResourcePool{name: name, capacity: capacity}
}

func (p *ResourcePool) Name() string  { return p.name }
func (p *ResourcePool) Capacity() int { return p.capacity }

// Held returns the number of units currently granted.
func (p *ResourcePool) Held() int { return p.held }

// Waiting returns the number of queued requests.
func (p *ResourcePool) Waiting() int { return len(p.waiters) }

// Request acquires one unit. If a unit is free the continuation resumes
// synchronously at the current virtual time; otherwise it joins the FIFO
// wait queue and resumes when a holder releases.
func (p *ResourcePool) Request(sim *Simulator, resume func(*Simulator)) {
	if p.held < p.capacity {
		p.held++
		logrus.Debugf("[%s] %s granted (%d/%d held)", FormatClock(sim.Now()), p.name, p.held, p.capacity)
		resume(sim)
		return
	}
	p.waiters = append(p.waiters, resume)
	logrus.Debugf("[%s] %s busy, %d waiting", FormatClock(sim.Now()), p.name, len(p.waiters))
}

// Release returns one unit. If anyone is waiting, the head of the queue is
// granted immediately via a scheduler event at the current time, preserving
// FIFO order among same-time grants.
func (p *ResourcePool) Release(sim *Simulator) {
	if p.held <= 0 {
		panic(&InvariantViolationError{Detail: "release of " + p.name + " with no units held"})
	}
	p.held--
	if len(p.waiters) == 0 {
		return
	}
	next := p.waiters[0]
	p.waiters = p.waiters[1:]
	p.held++
	sim.mustScheduleAfter(0, next)
}
