// Package sim provides the discrete-event simulation engine for the clinic's
// medical-certificate workflow.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - simulator.go: the virtual clock and event loop (RunUntil)
//   - pool.go: capacity-limited, FIFO-fair staff resource pools
//   - process.go: the per-case state machine (nurse → doctor → staff)
//
// # Architecture
//
// The sim package owns timing, contention, and accounting; the decision
// rules live in sub-packages:
//   - sim/triage/: the ordered expert pipeline (nurse, doctor, staff)
//   - sim/scenario/: predefined scenarios and typical clinic cases
//
// A run is assembled by Clinic (run.go): the Generator schedules arrival
// events, each arrival spawns a CaseProcess that acquires pool slots in
// sequence and evaluates one triage stage per slot, and terminal states fold
// into Metrics and fire through the Notifier boundary.
//
// Determinism: one logical thread, a seeded PartitionedRNG, and FIFO
// tie-breaking for same-timestamp events make every run reproducible from
// its seed and configuration.
package sim
