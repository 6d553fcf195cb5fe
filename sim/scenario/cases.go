package scenario

import (
	"sort"
	"time"

	"github.com/clinic-sim/clinic-sim/sim/triage"
)

// TypicalCase is one entry in the clinic's catalog of recurring scenarios,
// kept for training and for exercising the triage pipeline outside a
// simulation run.
type TypicalCase struct {
	Name                  string
	Description           string
	Symptoms              []string
	Severity              string
	RecommendedDays       int
	Notes                 string
	RequiresDoctor        bool
	DocumentationRequired []string
}

// Facts builds a fully documented fact set for the case, suitable for
// feeding straight into triage.Analyze.
func (tc TypicalCase) Facts(studentID string, at time.Time) triage.Facts {
	return triage.Facts{
		StudentID:       studentID,
		HasExcuseLetter: true,
		ValidID:         triage.Bool(true),
		Symptoms:        tc.Symptoms,
		Timestamp:       at,
	}
}

// typicalCases is the clinic's case catalog keyed by CLI name.
var typicalCases = map[string]TypicalCase{
	"fever_and_flu": {
		Name:                  "Fever and Flu",
		Description:           "Common cold with fever and body aches",
		Symptoms:              []string{"fever (38.5C)", "runny nose", "sore throat", "body aches", "fatigue"},
		Severity:              "normal",
		RecommendedDays:       2,
		Notes:                 "Typical viral infection case",
		RequiresDoctor:        false,
		DocumentationRequired: []string{"excuse_letter"},
	},
	"severe_migraine": {
		Name:                  "Severe Migraine",
		Description:           "Intense headache with visual disturbances",
		Symptoms:              []string{"severe headache", "visual aura", "nausea", "sensitivity to light"},
		Severity:              "moderate",
		RecommendedDays:       2,
		Notes:                 "Requires rest in dark, quiet environment",
		RequiresDoctor:        false,
		DocumentationRequired: []string{"excuse_letter"},
	},
	"acute_gastroenteritis": {
		Name:                  "Acute Gastroenteritis",
		Description:           "Food poisoning symptoms",
		Symptoms:              []string{"vomiting", "diarrhea", "abdominal pain", "mild fever"},
		Severity:              "moderate",
		RecommendedDays:       3,
		Notes:                 "Requires hydration and rest",
		RequiresDoctor:        false,
		DocumentationRequired: []string{"excuse_letter"},
	},
	"respiratory_distress": {
		Name:                  "Respiratory Distress",
		Description:           "Difficulty breathing with chest pain",
		Symptoms:              []string{"difficulty breathing", "chest pain", "rapid heartbeat", "dizziness"},
		Severity:              "high",
		RecommendedDays:       5,
		Notes:                 "Immediate medical attention required",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "previous_medical_records"},
	},
	"sports_injury": {
		Name:                  "Sports Injury",
		Description:           "Ankle sprain during sports activity",
		Symptoms:              []string{"ankle pain", "swelling", "difficulty walking", "bruising"},
		Severity:              "moderate",
		RecommendedDays:       3,
		Notes:                 "RICE protocol recommended",
		RequiresDoctor:        false,
		DocumentationRequired: []string{"excuse_letter", "incident_report"},
	},
	"mental_health_day": {
		Name:                  "Mental Health Day",
		Description:           "Stress and anxiety symptoms",
		Symptoms:              []string{"anxiety", "difficulty concentrating", "fatigue", "sleep disturbance"},
		Severity:              "normal",
		RecommendedDays:       2,
		Notes:                 "Counseling referral recommended",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "counselor_note"},
	},
	"viral_infection": {
		Name:                  "Viral Infection (COVID-like)",
		Description:           "Respiratory infection with fever",
		Symptoms:              []string{"high fever", "dry cough", "fatigue", "loss of taste/smell"},
		Severity:              "high",
		RecommendedDays:       7,
		Notes:                 "COVID test recommended, isolation required",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "test_results"},
	},
	"chronic_flareup": {
		Name:                  "Chronic Condition Flare-up",
		Description:           "Asthma exacerbation",
		Symptoms:              []string{"wheezing", "shortness of breath", "chest tightness", "coughing fits"},
		Severity:              "high",
		RecommendedDays:       4,
		Notes:                 "Known asthmatic patient",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "medical_history", "action_plan"},
	},
	"post_surgery": {
		Name:                  "Post-Surgery Follow-up",
		Description:           "Recovery from appendectomy",
		Symptoms:              []string{"surgery recovery", "limited mobility", "fatigue", "mild fever"},
		Severity:              "high",
		RecommendedDays:       10,
		Notes:                 "Post-operative care required",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "surgical_records", "doctor_note"},
	},
	"infectious_disease": {
		Name:                  "Infectious Disease",
		Description:           "Suspected mumps case",
		Symptoms:              []string{"swollen salivary glands", "fever", "headache", "muscle aches"},
		Severity:              "high",
		RecommendedDays:       14,
		Notes:                 "Isolation required, contact tracing needed",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "test_results", "health_declaration"},
	},
	"minor_injury": {
		Name:                  "Minor Injury",
		Description:           "Paper cut with mild infection",
		Symptoms:              []string{"localized pain", "minor swelling", "redness"},
		Severity:              "low",
		RecommendedDays:       1,
		Notes:                 "Basic first aid sufficient",
		RequiresDoctor:        false,
		DocumentationRequired: []string{"excuse_letter"},
	},
	"seasonal_allergies": {
		Name:                  "Seasonal Allergies",
		Description:           "Hay fever symptoms",
		Symptoms:              []string{"sneezing", "itchy eyes", "runny nose", "congestion"},
		Severity:              "low",
		RecommendedDays:       1,
		Notes:                 "Common during spring",
		RequiresDoctor:        false,
		DocumentationRequired: []string{"excuse_letter"},
	},
	"chronic_fatigue": {
		Name:                  "Chronic Fatigue",
		Description:           "Ongoing fatigue investigation",
		Symptoms:              []string{"persistent fatigue", "muscle weakness", "difficulty concentrating", "sleep problems"},
		Severity:              "moderate",
		RecommendedDays:       5,
		Notes:                 "Requires comprehensive evaluation",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "medical_history", "test_results"},
	},
	"lab_accident": {
		Name:                  "Laboratory Accident",
		Description:           "Chemical splash exposure",
		Symptoms:              []string{"eye irritation", "skin redness", "burning sensation"},
		Severity:              "high",
		RecommendedDays:       3,
		Notes:                 "Immediate decontamination required",
		RequiresDoctor:        true,
		DocumentationRequired: []string{"excuse_letter", "incident_report", "lab_safety_report"},
	},
}

// LookupCase returns the named typical case.
func LookupCase(name string) (TypicalCase, bool) {
	tc, ok := typicalCases[name]
	return tc, ok
}

// CaseNames returns the catalog keys in sorted order.
func CaseNames() []string {
	names := make([]string, 0, len(typicalCases))
	for name := range typicalCases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
