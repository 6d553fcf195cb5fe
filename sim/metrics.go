// Tracks run-wide clinic statistics: counts, decision tallies, wait times.

package sim

import "fmt"

// NurseTally counts nurse-stage outcomes. A rejection is tallied under Refer
// (the student is turned away), everything the nurse keeps is Treat.
type NurseTally struct {
	Refer int `json:"refer"`
	Treat int `json:"treat"`
}

// DoctorTally counts doctor-stage outcomes.
type DoctorTally struct {
	Issue int `json:"issue"`
	Deny  int `json:"deny"`
}

// Metrics accumulates statistics during a run. Mutated only at well-defined
// completion points by the single-threaded event loop; read via Snapshot.
type Metrics struct {
	TotalStudents      int
	StudentsInSystem   int
	CertificatesIssued int
	TotalWaitTime      float64

	NurseDecisions  NurseTally
	DoctorDecisions DoctorTally

	SimpleCases  int
	ComplexCases int

	PeakHourVisits int
	OffPeakVisits  int
}

// Snapshot is a point-in-time, read-only copy of the aggregate statistics
// with the derived rates precomputed. Generating one never blocks the
// scheduler; it is a plain value copy.
type Snapshot struct {
	PatientsInSystem   int     `json:"patients_in_system"`
	PatientsSeen       int     `json:"patients_seen"`
	CertificatesIssued int     `json:"certificates_issued"`
	AverageWait        float64 `json:"average_wait"`
	SuccessRate        float64 `json:"success_rate"`
	PeakHourRate       float64 `json:"peak_hour_rate"`
	SimpleCases        int     `json:"simple_cases"`
	ComplexCases       int     `json:"complex_cases"`
}

// Snapshot returns the current statistics as an immutable copy.
func (m *Metrics) Snapshot() Snapshot {
	seen := max(1, m.TotalStudents)
	return Snapshot{
		PatientsInSystem:   m.StudentsInSystem,
		PatientsSeen:       m.TotalStudents,
		CertificatesIssued: m.CertificatesIssued,
		AverageWait:        m.TotalWaitTime / float64(seen),
		SuccessRate:        float64(m.CertificatesIssued) / float64(seen) * 100,
		PeakHourRate:       float64(m.PeakHourVisits) / float64(seen) * 100,
		SimpleCases:        m.SimpleCases,
		ComplexCases:       m.ComplexCases,
	}
}

// FinalStats is the record returned by Run once the horizon is reached.
type FinalStats struct {
	TotalPatients           int         `json:"total_patients"`
	PatientsSeen            int         `json:"patients_seen"`
	CertificatesIssued      int         `json:"certificates_issued"`
	AverageWaitTime         float64     `json:"average_wait_time"`
	CertificateIssuanceRate float64     `json:"certificate_issuance_rate"`
	SimpleCases             int         `json:"simple_cases"`
	ComplexCases            int         `json:"complex_cases"`
	PeakHourVisits          int         `json:"peak_hour_visits"`
	OffPeakVisits           int         `json:"off_peak_visits"`
	NurseDecisions          NurseTally  `json:"nurse_decisions"`
	DoctorDecisions         DoctorTally `json:"doctor_decisions"`
}

// Final folds the accumulated metrics into the run's final statistics record.
func (m *Metrics) Final() FinalStats {
	seen := max(1, m.TotalStudents)
	return FinalStats{
		TotalPatients:           m.TotalStudents,
		PatientsSeen:            m.TotalStudents,
		CertificatesIssued:      m.CertificatesIssued,
		AverageWaitTime:         m.TotalWaitTime / float64(seen),
		CertificateIssuanceRate: float64(m.CertificatesIssued) / float64(seen) * 100,
		SimpleCases:             m.SimpleCases,
		ComplexCases:            m.ComplexCases,
		PeakHourVisits:          m.PeakHourVisits,
		OffPeakVisits:           m.OffPeakVisits,
		NurseDecisions:          m.NurseDecisions,
		DoctorDecisions:         m.DoctorDecisions,
	}
}

// Print displays the final statistics at the end of a run.
func (s FinalStats) Print() {
	fmt.Println("=== Clinic Simulation Results ===")
	fmt.Printf("Total Patients       : %d\n", s.TotalPatients)
	fmt.Printf("Certificates Issued  : %d\n", s.CertificatesIssued)
	fmt.Printf("Issuance Rate        : %.1f%%\n", s.CertificateIssuanceRate)
	fmt.Printf("Average Wait         : %.1f min\n", s.AverageWaitTime)
	fmt.Printf("Simple / Complex     : %d / %d\n", s.SimpleCases, s.ComplexCases)
	fmt.Printf("Peak / Off-Peak      : %d / %d\n", s.PeakHourVisits, s.OffPeakVisits)
	fmt.Printf("Nurse refer/treat    : %d / %d\n", s.NurseDecisions.Refer, s.NurseDecisions.Treat)
	fmt.Printf("Doctor issue/deny    : %d / %d\n", s.DoctorDecisions.Issue, s.DoctorDecisions.Deny)
}
