package triage

import (
	"fmt"
	"strings"
)

// Expert is one stage of the triage pipeline. Evaluate must be a pure
// function of the facts: same input, same verdict, no retained state.
type Expert interface {
	Name() string
	Eligible(Facts) bool
	Evaluate(Facts) Record
}

const (
	StageNurse  = "nurse"
	StageDoctor = "doctor"
	StageStaff  = "staff"
)

// simpleCases is the nurse's vocabulary of routine complaints. Membership is
// an exact (case-insensitive) match against the whole symptom string.
var simpleCases = map[string]bool{
	"cold":         true,
	"flu":          true,
	"cough":        true,
	"headache":     true,
	"fever":        true,
	"stomach_ache": true,
	"sore throat":  true,
}

// complexConditions is the doctor's vocabulary of conditions that justify a
// certificate. Matching is by substring so that phrasings like
// "recurring fever (3 weeks)" still count.
var complexConditions = []string{
	"recurring fever",
	"severe injury",
	"chronic pain",
	"mental health",
	"surgery recovery",
	"infectious disease",
}

// NurseExpert performs the initial assessment: document check plus a
// complexity classification that routes the case.
type NurseExpert struct{}

func NewNurse() *NurseExpert { return &NurseExpert{} }

func (e *NurseExpert) Name() string { return StageNurse }

func (e *NurseExpert) Eligible(f Facts) bool {
	return f.HasExcuseLetter && f.StudentID != ""
}

func (e *NurseExpert) Evaluate(f Facts) Record {
	if !f.HasExcuseLetter || !f.validID() {
		return Record{
			Stage:      StageNurse,
			Decision:   DecisionReject,
			Reason:     "No valid excuse letter or ID",
			Complexity: ComplexitySimple,
		}
	}
	if e.classify(f.Symptoms) == ComplexitySimple {
		return Record{
			Stage:      StageNurse,
			Decision:   DecisionApprove,
			Reason:     "Simple case with valid documentation",
			Complexity: ComplexitySimple,
		}
	}
	return Record{
		Stage:      StageNurse,
		Decision:   DecisionRefer,
		Reason:     "Complex case needs doctor review",
		Complexity: ComplexityComplex,
	}
}

// classify is simple iff any symptom is in the routine vocabulary.
func (e *NurseExpert) classify(symptoms []string) Complexity {
	for _, s := range symptoms {
		if simpleCases[strings.ToLower(s)] {
			return ComplexitySimple
		}
	}
	return ComplexityComplex
}

// DoctorExpert reviews complex cases referred by the nurse. Approval requires
// a severity score at or above the confidence threshold.
type DoctorExpert struct {
	ConfidenceThreshold float64
}

func NewDoctor() *DoctorExpert {
	return &DoctorExpert{ConfidenceThreshold: 0.7}
}

func (e *DoctorExpert) Name() string { return StageDoctor }

func (e *DoctorExpert) Eligible(f Facts) bool {
	return f.HasExcuseLetter && f.IllnessType == ComplexityComplex
}

func (e *DoctorExpert) Evaluate(f Facts) Record {
	if !f.HasExcuseLetter || !f.validID() || len(f.Symptoms) == 0 {
		return Record{
			Stage:    StageDoctor,
			Decision: DecisionReject,
			Reason:   "Insufficient documentation for complex case",
		}
	}
	severity := e.assessSeverity(f.Symptoms)
	if severity >= e.ConfidenceThreshold {
		return Record{
			Stage:    StageDoctor,
			Decision: DecisionApprove,
			Reason:   "Complex case validated and approved",
			Severity: severity,
		}
	}
	return Record{
		Stage:    StageDoctor,
		Decision: DecisionReject,
		Reason:   "Condition does not warrant certificate",
	}
}

// assessSeverity is the fraction of symptoms that mention a known complex
// condition.
func (e *DoctorExpert) assessSeverity(symptoms []string) float64 {
	severe := 0
	for _, s := range symptoms {
		lower := strings.ToLower(s)
		for _, c := range complexConditions {
			if strings.Contains(lower, c) {
				severe++
				break
			}
		}
	}
	return float64(severe) / float64(max(1, len(symptoms)))
}

// StaffExpert files the approved case and mints the certificate record.
type StaffExpert struct{}

func NewStaff() *StaffExpert { return &StaffExpert{} }

func (e *StaffExpert) Name() string { return StageStaff }

func (e *StaffExpert) Eligible(f Facts) bool {
	return e.fieldsComplete(f)
}

func (e *StaffExpert) Evaluate(f Facts) Record {
	if !e.fieldsComplete(f) {
		return Record{
			Stage:    StageStaff,
			Decision: DecisionReject,
			Reason:   "Missing required information for record",
		}
	}
	return Record{
		Stage:    StageStaff,
		Decision: DecisionRecord,
		Reason:   "Case recorded in system",
		RecordID: recordID(f),
	}
}

// fieldsComplete requires every record field to be present and truthy.
func (e *StaffExpert) fieldsComplete(f Facts) bool {
	return f.StudentID != "" &&
		len(f.Symptoms) > 0 &&
		!f.Timestamp.IsZero() &&
		f.HasExcuseLetter &&
		f.validID()
}

// recordID derives the certificate identifier from the student id and the
// minute-granularity intake timestamp.
func recordID(f Facts) string {
	return fmt.Sprintf("MC-%s-%s", f.StudentID, f.Timestamp.Format("200601021504"))
}
