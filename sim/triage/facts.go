package triage

import "time"

// Complexity classifies a case as routine or needing doctor review.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityComplex Complexity = "complex"
)

// Facts is the fact set describing one student's certificate request.
// Facts are read-only from the experts' point of view: every stage receives
// the same value and none is permitted to mutate it.
//
// ValidID is a pointer so that "not provided" can be distinguished from
// "provided as false". Analyze defaults an absent ValidID to true before
// evaluation, matching the intake form's legacy behavior.
type Facts struct {
	StudentID              string     `yaml:"student_id"`
	HasExcuseLetter        bool       `yaml:"has_excuse_letter"`
	ValidID                *bool      `yaml:"valid_id,omitempty"`
	Symptoms               []string   `yaml:"symptoms"`
	IllnessType            Complexity `yaml:"illness_type,omitempty"`
	Timestamp              time.Time  `yaml:"timestamp,omitempty"`
	ParentGuardianVerified bool       `yaml:"parent_guardian_verified,omitempty"`
}

// WithDefaults returns a copy of f with the compatibility defaults applied.
// Currently the only default is ValidID=true when the field is absent.
func (f Facts) WithDefaults() Facts {
	if f.ValidID == nil {
		valid := true
		f.ValidID = &valid
	}
	return f
}

// validID dereferences the optional ValidID field; absent counts as false
// at the expert level (Analyze applies the legacy default before dispatch).
func (f Facts) validID() bool {
	return f.ValidID != nil && *f.ValidID
}

// Bool is a convenience for building Facts literals with an explicit ValidID.
func Bool(v bool) *bool {
	return &v
}
