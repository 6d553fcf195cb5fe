package triage

// Decision is the verdict of a single expert stage.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionRefer   Decision = "refer"
	DecisionRecord  Decision = "record"
)

// Record is one stage's structured verdict (a decision record). A record is
// immutable once produced; the case process appends each one to its audit
// history and never rewrites an earlier entry.
type Record struct {
	Stage      string     `json:"stage"`
	Decision   Decision   `json:"decision"`
	Reason     string     `json:"reason"`
	Complexity Complexity `json:"complexity,omitempty"`
	RecordID   string     `json:"record_id,omitempty"`
	Severity   float64    `json:"severity,omitempty"`
	ApprovedBy string     `json:"approved_by,omitempty"`
}

// Rejected reports whether the record terminates the pipeline.
func (r Record) Rejected() bool {
	return r.Decision == DecisionReject
}
