package triage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNurseClassify_CaseInsensitiveMatch(t *testing.T) {
	nurse := NewNurse()

	tests := []struct {
		name     string
		symptoms []string
		want     Complexity
	}{
		{"lowercase match", []string{"fever"}, ComplexitySimple},
		{"uppercase match", []string{"FEVER"}, ComplexitySimple},
		{"multi-word simple", []string{"sore throat"}, ComplexitySimple},
		{"one simple among complex", []string{"recurring fever", "cough"}, ComplexitySimple},
		{"no simple match", []string{"recurring fever"}, ComplexityComplex},
		{"substring does not count", []string{"feverish"}, ComplexityComplex},
		{"empty symptoms", nil, ComplexityComplex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nurse.classify(tt.symptoms))
		})
	}
}

func TestNurseEligible(t *testing.T) {
	nurse := NewNurse()

	assert.True(t, nurse.Eligible(Facts{StudentID: "S0001", HasExcuseLetter: true}))
	assert.False(t, nurse.Eligible(Facts{StudentID: "S0001"}))
	assert.False(t, nurse.Eligible(Facts{HasExcuseLetter: true}))
}

func TestDoctorSeverity(t *testing.T) {
	doctor := NewDoctor()

	tests := []struct {
		name     string
		symptoms []string
		want     float64
	}{
		{"all severe", []string{"recurring fever", "chronic pain"}, 1.0},
		{"half severe", []string{"chronic pain", "runny nose"}, 0.5},
		{"substring match", []string{"post surgery recovery pain"}, 1.0},
		{"none severe", []string{"runny nose"}, 0},
		{"empty avoids division by zero", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, doctor.assessSeverity(tt.symptoms), 1e-9)
		})
	}
}

func TestDoctorEvaluate_ThresholdBoundary(t *testing.T) {
	doctor := NewDoctor()
	f := Facts{
		StudentID:       "S0001",
		HasExcuseLetter: true,
		ValidID:         Bool(true),
		Timestamp:       time.Now(),
		// 7 of 10 severe: severity exactly 0.7, which meets the threshold.
		Symptoms: []string{
			"chronic pain", "severe injury", "recurring fever", "mental health issues",
			"surgery recovery", "infectious disease", "chronic pain again",
			"runny nose", "sneezing", "itchy eyes",
		},
	}

	rec := doctor.Evaluate(f)

	assert.Equal(t, DecisionApprove, rec.Decision)
	assert.InDelta(t, 0.7, rec.Severity, 1e-9)
}

func TestDoctorEvaluate_InsufficientDocumentation(t *testing.T) {
	doctor := NewDoctor()

	tests := []struct {
		name  string
		facts Facts
	}{
		{"no symptoms", Facts{HasExcuseLetter: true, ValidID: Bool(true)}},
		{"invalid id", Facts{HasExcuseLetter: true, ValidID: Bool(false), Symptoms: []string{"chronic pain"}}},
		{"no letter", Facts{ValidID: Bool(true), Symptoms: []string{"chronic pain"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doctor.Evaluate(tt.facts)
			assert.Equal(t, DecisionReject, rec.Decision)
			assert.Equal(t, "Insufficient documentation for complex case", rec.Reason)
		})
	}
}

func TestStaffEvaluate_RecordIDFormat(t *testing.T) {
	staff := NewStaff()
	f := Facts{
		StudentID:       "S0042",
		HasExcuseLetter: true,
		ValidID:         Bool(true),
		Symptoms:        []string{"flu"},
		Timestamp:       time.Date(2025, time.March, 7, 14, 5, 59, 0, time.UTC),
	}

	rec := staff.Evaluate(f)

	assert.Equal(t, DecisionRecord, rec.Decision)
	assert.Equal(t, "MC-S0042-202503071405", rec.RecordID, "seconds must not leak into the record id")
}

func TestStaffEvaluate_MissingFieldRejected(t *testing.T) {
	staff := NewStaff()
	complete := Facts{
		StudentID:       "S0001",
		HasExcuseLetter: true,
		ValidID:         Bool(true),
		Symptoms:        []string{"flu"},
		Timestamp:       time.Now(),
	}

	mutations := map[string]func(Facts) Facts{
		"no student id": func(f Facts) Facts { f.StudentID = ""; return f },
		"no symptoms":   func(f Facts) Facts { f.Symptoms = nil; return f },
		"no timestamp":  func(f Facts) Facts { f.Timestamp = time.Time{}; return f },
		"no letter":     func(f Facts) Facts { f.HasExcuseLetter = false; return f },
		"invalid id":    func(f Facts) Facts { f.ValidID = Bool(false); return f },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			rec := staff.Evaluate(mutate(complete))
			assert.Equal(t, DecisionReject, rec.Decision)
			assert.Equal(t, "Missing required information for record", rec.Reason)
		})
	}
}
