package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/clinic-sim/clinic-sim/sim/triage"
)

// CaseProcess is the runtime state of one student's journey through the
// clinic: nurse assessment, optional doctor review, then record keeping.
//
// The process is an explicit state machine driven by the scheduler. Each
// method below is the continuation for one suspension point — a resource
// grant or the end of a service delay. The scheduler owns the process
// exclusively until it reaches a terminal state; nothing else observes its
// state while it is suspended.
type CaseProcess struct {
	clinic *Clinic
	facts  triage.Facts

	arrivalTime float64
	nurseStart  float64
	doctorStart float64
	staffStart  float64

	// nurseAssessment routes the case (doctor vs staff) and attributes the
	// final approval. It is set exactly once.
	nurseAssessment triage.Record

	// history is the append-only audit trail of per-stage decisions.
	history []triage.Record
}

func newCaseProcess(c *Clinic, facts triage.Facts, arrival float64) *CaseProcess {
	return &CaseProcess{clinic: c, facts: facts, arrivalTime: arrival}
}

// History returns the decision records accumulated so far.
func (cp *CaseProcess) History() []triage.Record {
	return cp.history
}

// start admits the case: it is counted in the system, classified against the
// peak windows, announced to observers, and queued for a nurse.
func (cp *CaseProcess) start(sim *Simulator) {
	c := cp.clinic
	c.metrics.StudentsInSystem++
	if c.cfg.IsPeakHour(cp.arrivalTime) {
		c.metrics.PeakHourVisits++
	} else {
		c.metrics.OffPeakVisits++
	}

	c.notifier.Emit(EventArrival, ArrivalPayload{
		StudentID:       cp.facts.StudentID,
		Time:            FormatClock(cp.arrivalTime),
		Minutes:         cp.arrivalTime,
		HasExcuseLetter: cp.facts.HasExcuseLetter,
		HasValidID:      cp.facts.ValidID != nil && *cp.facts.ValidID,
	})

	c.nurses.Request(sim, cp.nurseGranted)
}

func (cp *CaseProcess) nurseGranted(sim *Simulator) {
	cp.nurseStart = sim.Now()
	sim.mustScheduleAfter(cp.clinic.cfg.VisualizationDelay+cp.clinic.cfg.NurseProcessTime, cp.nurseDone)
}

// nurseDone evaluates the nurse stage and routes the case. The nurse slot is
// released on every exit path, including rejection.
func (cp *CaseProcess) nurseDone(sim *Simulator) {
	c := cp.clinic
	defer c.nurses.Release(sim)

	rec := triage.SafeEvaluate(c.pipeline.Nurse(), cp.facts)
	cp.history = append(cp.history, rec)

	if rec.Rejected() {
		c.metrics.NurseDecisions.Refer++
		cp.complete(sim, StatusRejectedByNurse, rec.Reason)
		return
	}
	c.metrics.NurseDecisions.Treat++
	cp.nurseAssessment = rec

	if rec.Complexity == triage.ComplexityComplex {
		c.metrics.ComplexCases++
	} else {
		c.metrics.SimpleCases++
	}

	if triage.NeedsDoctor(rec) {
		c.doctors.Request(sim, cp.doctorGranted)
		return
	}
	c.staff.Request(sim, cp.staffGranted)
}

func (cp *CaseProcess) doctorGranted(sim *Simulator) {
	cp.doctorStart = sim.Now()
	sim.mustScheduleAfter(cp.clinic.cfg.VisualizationDelay+cp.clinic.cfg.DoctorProcessTime, cp.doctorDone)
}

func (cp *CaseProcess) doctorDone(sim *Simulator) {
	c := cp.clinic
	defer c.doctors.Release(sim)

	rec := triage.SafeEvaluate(c.pipeline.Doctor(), cp.facts)
	cp.history = append(cp.history, rec)

	if rec.Rejected() {
		c.metrics.DoctorDecisions.Deny++
		cp.complete(sim, StatusRejectedByDoctor, rec.Reason)
		return
	}
	c.metrics.DoctorDecisions.Issue++
	c.staff.Request(sim, cp.staffGranted)
}

func (cp *CaseProcess) staffGranted(sim *Simulator) {
	cp.staffStart = sim.Now()
	sim.mustScheduleAfter(cp.clinic.cfg.StaffProcessTime+cp.clinic.cfg.VisualizationDelay, cp.staffDone)
}

func (cp *CaseProcess) staffDone(sim *Simulator) {
	c := cp.clinic
	defer c.staff.Release(sim)

	rec := triage.SafeEvaluate(c.pipeline.Staff(), cp.facts)
	cp.history = append(cp.history, rec)

	if rec.Decision != triage.DecisionRecord {
		cp.complete(sim, StatusRejectedByStaff, rec.Reason)
		return
	}

	c.metrics.CertificatesIssued++
	approver := triage.StageNurse
	if cp.nurseAssessment.Complexity == triage.ComplexityComplex {
		approver = triage.StageDoctor
	}
	cp.complete(sim, StatusCertificateIssued, "Approved by "+approver)
}

// complete folds the case into the aggregate statistics and notifies
// observers. Every terminal path funnels through here exactly once.
func (cp *CaseProcess) complete(sim *Simulator, status, reason string) {
	c := cp.clinic
	wait := sim.Now() - cp.arrivalTime
	c.metrics.TotalWaitTime += wait
	c.metrics.StudentsInSystem--

	logrus.Infof(">> Completion: %s %s (%s) after %.1f min",
		cp.facts.StudentID, status, reason, wait)

	c.notifier.Emit(EventCompletion, CompletionPayload{
		StudentID: cp.facts.StudentID,
		Status:    status,
		Reason:    reason,
		WaitTime:  wait,
		TotalTime: wait,
	})
	c.notifier.Emit(EventStatsSnapshot, c.metrics.Snapshot())
}
