// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the virtual clock and event scheduler. It owns the event
// queue and advances simulated time by popping the earliest event and
// executing it. Execution is strictly sequential: no two continuations ever
// run at the same wall instant, which removes data races by construction.
type Simulator struct {
	// Clock is the current virtual time in minutes. It never moves backward.
	Clock  float64
	events EventQueue
}

// NewSimulator creates a scheduler with the clock at zero and no events.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Now returns the current virtual time in minutes.
func (s *Simulator) Now() float64 {
	return s.Clock
}

// Pending returns the number of scheduled events.
func (s *Simulator) Pending() int {
	return s.events.Len()
}

// Schedule inserts ev at its own timestamp. Scheduling into the past is a
// programming defect and is rejected.
func (s *Simulator) Schedule(ev Event) error {
	if ev.Timestamp() < s.Clock {
		return &InvalidDelayError{Delay: ev.Timestamp() - s.Clock}
	}
	s.events.Schedule(ev)
	return nil
}

// ScheduleAfter resumes fn after the given delay in minutes.
func (s *Simulator) ScheduleAfter(delay float64, fn func(*Simulator)) error {
	if delay < 0 {
		return &InvalidDelayError{Delay: delay}
	}
	s.events.Schedule(&callbackEvent{time: s.Clock + delay, fn: fn})
	return nil
}

// mustScheduleAfter is ScheduleAfter for call sites whose delay is already
// validated; a failure here is an invariant violation.
func (s *Simulator) mustScheduleAfter(delay float64, fn func(*Simulator)) {
	if err := s.ScheduleAfter(delay, fn); err != nil {
		panic(&InvariantViolationError{Detail: err.Error()})
	}
}

// RunUntil repeatedly pops the earliest event, advances the clock to its
// timestamp, and executes it. It stops when the queue is empty or the next
// event lies beyond end. Events with equal timestamps execute in the order
// they were scheduled.
func (s *Simulator) RunUntil(end float64) error {
	for s.events.Len() > 0 {
		next := s.events.Peek()
		if next.Timestamp() > end {
			break
		}
		ev := s.events.PopNext()
		if ev.Timestamp() < s.Clock {
			return &InvariantViolationError{
				Detail: fmt.Sprintf("event at %.4f behind clock %.4f", ev.Timestamp(), s.Clock),
			}
		}
		s.Clock = ev.Timestamp()
		logrus.Debugf("[%s] executing %T", FormatClock(s.Clock), ev)
		ev.Execute(s)
	}
	if s.Clock < end {
		s.Clock = end
	}
	return nil
}

// FormatClock renders virtual minutes as HH:MM.
func FormatClock(minutes float64) string {
	if minutes < 0 {
		return "00:00"
	}
	h := int(minutes) / 60
	m := int(minutes) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
