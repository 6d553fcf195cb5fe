// Package triage implements the ordered rule pipeline that decides whether a
// student's medical-certificate request is approved, rejected, or escalated.
//
// The pipeline is consumable on its own (Analyze) and stage by stage, which
// is how the simulation drives it: each resource stage evaluates exactly one
// expert while holding the matching staff resource.
package triage

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Pipeline holds the fixed ordered stages: nurse, then doctor when the nurse
// refers or classifies the case complex, then clinic staff for recording.
type Pipeline struct {
	nurse  Expert
	doctor Expert
	staff  Expert
}

// NewPipeline builds the standard three-stage pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		nurse:  NewNurse(),
		doctor: NewDoctor(),
		staff:  NewStaff(),
	}
}

// Nurse returns the nurse stage expert.
func (p *Pipeline) Nurse() Expert { return p.nurse }

// Doctor returns the doctor stage expert.
func (p *Pipeline) Doctor() Expert { return p.doctor }

// Staff returns the clinic staff stage expert.
func (p *Pipeline) Staff() Expert { return p.staff }

// NeedsDoctor reports whether a nurse assessment escalates the case.
// A refer decision and a complex classification are tracked independently;
// either one routes the case to the doctor.
func NeedsDoctor(nurse Record) bool {
	return nurse.Decision == DecisionRefer || nurse.Complexity == ComplexityComplex
}

// SafeEvaluate runs one expert and converts any internal fault into a reject
// decision. A malformed case must never take down the surrounding simulation.
func SafeEvaluate(e Expert, f Facts) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("triage: %s stage fault: %v", e.Name(), r)
			rec = Record{
				Stage:    e.Name(),
				Decision: DecisionReject,
				Reason:   fmt.Sprintf("System error: %v", r),
			}
		}
	}()
	return e.Evaluate(f)
}

// Evaluate runs facts through the full pipeline and returns the terminal
// decision plus the per-stage audit trail. The first reject short-circuits
// the remaining stages. Evaluate applies the compatibility defaults itself,
// so callers may pass facts exactly as captured at intake.
func (p *Pipeline) Evaluate(f Facts) (Record, []Record) {
	f = f.WithDefaults()

	history := make([]Record, 0, 3)

	if !p.nurse.Eligible(f) {
		rec := Record{
			Stage:      StageNurse,
			Decision:   DecisionReject,
			Reason:     "No valid excuse letter or ID",
			Complexity: ComplexitySimple,
		}
		return rec, append(history, rec)
	}

	nurse := SafeEvaluate(p.nurse, f)
	history = append(history, nurse)
	if nurse.Rejected() {
		return nurse, history
	}

	if NeedsDoctor(nurse) {
		doctor := SafeEvaluate(p.doctor, f)
		history = append(history, doctor)
		if doctor.Rejected() {
			return doctor, history
		}
	}

	staff := SafeEvaluate(p.staff, f)
	history = append(history, staff)
	if staff.Decision != DecisionRecord {
		return staff, history
	}

	final := Record{
		Stage:      StageStaff,
		Decision:   DecisionApprove,
		Reason:     staff.Reason,
		RecordID:   staff.RecordID,
		ApprovedBy: approvedBy(nurse),
	}
	return final, history
}

// approvedBy attributes the certificate to the doctor for complex cases and
// to the nurse otherwise.
func approvedBy(nurse Record) string {
	if nurse.Complexity == ComplexityComplex {
		return StageDoctor
	}
	return StageNurse
}

// Analyze evaluates one case through a fresh pipeline and returns only the
// terminal decision record. This is the standalone entry point used outside
// the simulation.
func Analyze(f Facts) Record {
	final, _ := NewPipeline().Evaluate(f)
	return final
}
