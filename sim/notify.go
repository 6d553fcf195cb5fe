package sim

import "github.com/sirupsen/logrus"

// EventKind tags a notification delivered to the external observer.
type EventKind string

const (
	EventArrival       EventKind = "arrival"
	EventCompletion    EventKind = "completion"
	EventStatsSnapshot EventKind = "stats_snapshot"
)

// Callback receives structured notifications from the simulation. The
// presentation layer owns it; the core never assumes it is reentrant-safe
// and never lets its failures reach the scheduler.
type Callback func(kind EventKind, payload any)

// ArrivalPayload describes a student entering the system.
type ArrivalPayload struct {
	StudentID       string  `json:"student_id"`
	Time            string  `json:"time"`
	Minutes         float64 `json:"minutes"`
	HasExcuseLetter bool    `json:"has_excuse_letter"`
	HasValidID      bool    `json:"has_valid_id"`
}

// Completion status values.
const (
	StatusRejectedByNurse   = "rejected_by_nurse"
	StatusRejectedByDoctor  = "rejected_by_doctor"
	StatusRejectedByStaff   = "rejected_by_staff"
	StatusCertificateIssued = "certificate_issued"
)

// CompletionPayload describes a case reaching a terminal state.
type CompletionPayload struct {
	StudentID string  `json:"student_id"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason"`
	WaitTime  float64 `json:"wait_time"`
	TotalTime float64 `json:"total_time"`
}

// Notifier is the boundary between the simulation and external observers.
// A panicking callback is logged and swallowed so that observer bugs can
// never corrupt scheduler or resource-pool state.
type Notifier struct {
	cb Callback
}

// NewNotifier wraps cb; a nil callback yields a notifier that drops events.
func NewNotifier(cb Callback) *Notifier {
	return &Notifier{cb: cb}
}

// Emit delivers one notification, containing any observer failure.
func (n *Notifier) Emit(kind EventKind, payload any) {
	if n == nil || n.cb == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("event callback failed for %s: %v", kind, r)
		}
	}()
	n.cb(kind, payload)
}
