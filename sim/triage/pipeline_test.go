package triage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStamp = time.Date(2025, time.September, 1, 9, 15, 0, 0, time.UTC)

func documentedFacts(symptoms ...string) Facts {
	return Facts{
		StudentID:       "S0001",
		HasExcuseLetter: true,
		ValidID:         Bool(true),
		Symptoms:        symptoms,
		Timestamp:       testStamp,
	}
}

func TestEvaluate_SimpleCaseApprovedByNurse(t *testing.T) {
	final, history := NewPipeline().Evaluate(documentedFacts("cough", "fever"))

	require.Len(t, history, 2, "simple case should see nurse then staff only")
	assert.Equal(t, DecisionApprove, history[0].Decision)
	assert.Equal(t, ComplexitySimple, history[0].Complexity)
	assert.Equal(t, DecisionRecord, history[1].Decision)

	assert.Equal(t, DecisionApprove, final.Decision)
	assert.Equal(t, StageNurse, final.ApprovedBy)
	assert.Equal(t, "MC-S0001-202509010915", final.RecordID)
}

func TestEvaluate_NoExcuseLetterRejectedImmediately(t *testing.T) {
	f := Facts{
		StudentID:       "S0002",
		HasExcuseLetter: false,
		ValidID:         Bool(true),
		Symptoms:        []string{"headache"},
		Timestamp:       testStamp,
	}

	final, history := NewPipeline().Evaluate(f)

	assert.Equal(t, DecisionReject, final.Decision)
	assert.Equal(t, "No valid excuse letter or ID", final.Reason)
	assert.Len(t, history, 1, "pipeline must halt at the nurse stage")
}

func TestEvaluate_ComplexCaseApprovedByDoctor(t *testing.T) {
	f := documentedFacts("recurring fever", "chronic pain")
	f.StudentID = "S0003"

	final, history := NewPipeline().Evaluate(f)

	require.Len(t, history, 3)
	assert.Equal(t, DecisionRefer, history[0].Decision)
	assert.Equal(t, ComplexityComplex, history[0].Complexity)
	assert.Equal(t, DecisionApprove, history[1].Decision)
	assert.Equal(t, 1.0, history[1].Severity)
	assert.Equal(t, DecisionRecord, history[2].Decision)

	assert.Equal(t, DecisionApprove, final.Decision)
	assert.Equal(t, StageDoctor, final.ApprovedBy)
}

func TestEvaluate_InvalidIDRejectedByNurse(t *testing.T) {
	f := documentedFacts("flu")
	f.ValidID = Bool(false)

	final, _ := NewPipeline().Evaluate(f)

	assert.Equal(t, DecisionReject, final.Decision)
	assert.Equal(t, "No valid excuse letter or ID", final.Reason)
}

func TestEvaluate_LowSeverityComplexCaseDenied(t *testing.T) {
	// No symptom matches the complex-condition vocabulary: severity 0.
	final, history := NewPipeline().Evaluate(documentedFacts("strange rash"))

	require.Len(t, history, 2)
	assert.Equal(t, DecisionRefer, history[0].Decision)
	assert.Equal(t, DecisionReject, final.Decision)
	assert.Equal(t, "Condition does not warrant certificate", final.Reason)
}

func TestEvaluate_MixedSeverityBelowThresholdDenied(t *testing.T) {
	// 1 of 3 symptoms severe: severity 0.33 < 0.7.
	f := documentedFacts("strange rash", "odd lump", "chronic pain")

	final, _ := NewPipeline().Evaluate(f)

	assert.Equal(t, DecisionReject, final.Decision)
	assert.Equal(t, "Condition does not warrant certificate", final.Reason)
}

func TestEvaluate_MissingStudentIDRejected(t *testing.T) {
	f := documentedFacts("cough")
	f.StudentID = ""

	final, history := NewPipeline().Evaluate(f)

	assert.Equal(t, DecisionReject, final.Decision)
	assert.Equal(t, "No valid excuse letter or ID", final.Reason)
	assert.Len(t, history, 1)
}

func TestEvaluate_ValidIDDefaultsToTrueWhenAbsent(t *testing.T) {
	f := documentedFacts("cold")
	f.ValidID = nil

	final, _ := NewPipeline().Evaluate(f)

	assert.Equal(t, DecisionApprove, final.Decision)
	assert.Equal(t, StageNurse, final.ApprovedBy)
}

func TestEvaluate_Deterministic(t *testing.T) {
	f := documentedFacts("recurring fever", "chronic pain")
	p := NewPipeline()

	first, firstHistory := p.Evaluate(f)
	for i := 0; i < 5; i++ {
		again, againHistory := p.Evaluate(f)
		assert.Equal(t, first, again)
		assert.Equal(t, firstHistory, againHistory)
	}
}

func TestAnalyze_ReturnsTerminalRecordOnly(t *testing.T) {
	final := Analyze(documentedFacts("flu"))

	assert.Equal(t, DecisionApprove, final.Decision)
	assert.NotEmpty(t, final.RecordID)
}

// faultyExpert panics during evaluation, standing in for a malformed case
// hitting an internal defect.
type faultyExpert struct{}

func (faultyExpert) Name() string          { return "faulty" }
func (faultyExpert) Eligible(Facts) bool   { return true }
func (faultyExpert) Evaluate(Facts) Record { panic("boom") }

func TestSafeEvaluate_ContainsFaults(t *testing.T) {
	rec := SafeEvaluate(faultyExpert{}, Facts{})

	assert.Equal(t, DecisionReject, rec.Decision)
	assert.Contains(t, rec.Reason, "System error")
	assert.Equal(t, "faulty", rec.Stage)
}

func TestNeedsDoctor(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"refer decision", Record{Decision: DecisionRefer}, true},
		{"complex classification", Record{Decision: DecisionApprove, Complexity: ComplexityComplex}, true},
		{"simple approve", Record{Decision: DecisionApprove, Complexity: ComplexitySimple}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsDoctor(tt.rec))
		})
	}
}
