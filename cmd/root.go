package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clinic-sim/clinic-sim/sim"
	"github.com/clinic-sim/clinic-sim/sim/scenario"
)

var (
	// CLI flags for the simulation run
	seed          int64   // Seed for random case generation
	durationHours float64 // Total simulated time (in hours)
	logLevel      string  // Log verbosity level
	nurses        int     // Nurse pool capacity
	doctors       int     // Doctor pool capacity
	staff         int     // Clerical staff pool capacity
	nurseMinutes  float64 // Nurse assessment time per case
	doctorMinutes float64 // Doctor review time per case
	staffMinutes  float64 // Record-keeping time per case
	scenarioName  string  // Named scenario preset
	scenarioFile  string  // YAML scenario file
	showEvents    bool    // Print per-case arrival/completion events
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "clinic-sim",
	Short: "Discrete-event simulator for a campus clinic's certificate workflow",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the clinic simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Could not build configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %.1fh, %d nurses, %d doctors, %d staff, seed=%d",
			cfg.DurationMinutes/60, cfg.NurseCapacity, cfg.DoctorCapacity, cfg.StaffCapacity, cfg.Seed)

		stats, err := sim.Run(cfg, eventPrinter())
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		stats.Print()

		logrus.Info("Simulation complete.")
	},
}

// buildConfig resolves precedence: scenario file, then named preset, then
// flag defaults. Explicit capacity/timing flags override either source.
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	var cfg sim.Config
	switch {
	case scenarioFile != "":
		loaded, err := LoadScenarioFile(scenarioFile)
		if err != nil {
			return sim.Config{}, err
		}
		cfg = loaded.Config(seed)
	case scenarioName != "":
		preset, ok := scenario.Lookup(scenarioName)
		if !ok {
			return sim.Config{}, &sim.ConfigError{Field: "scenario", Reason: "unknown preset " + scenarioName}
		}
		cfg = preset.Config(seed)
	default:
		cfg = sim.DefaultConfig()
		cfg.Seed = seed
	}

	if cmd.Flags().Changed("duration-hours") {
		cfg.DurationMinutes = durationHours * 60
	}
	if cmd.Flags().Changed("nurses") {
		cfg.NurseCapacity = nurses
	}
	if cmd.Flags().Changed("doctors") {
		cfg.DoctorCapacity = doctors
	}
	if cmd.Flags().Changed("staff") {
		cfg.StaffCapacity = staff
	}
	if cmd.Flags().Changed("nurse-minutes") {
		cfg.NurseProcessTime = nurseMinutes
	}
	if cmd.Flags().Changed("doctor-minutes") {
		cfg.DoctorProcessTime = doctorMinutes
	}
	if cmd.Flags().Changed("staff-minutes") {
		cfg.StaffProcessTime = staffMinutes
	}
	return cfg, nil
}

// eventPrinter routes simulation notifications to the log. With --events the
// per-case traffic is promoted to stdout-style info logging.
func eventPrinter() sim.Callback {
	if !showEvents {
		return nil
	}
	return func(kind sim.EventKind, payload any) {
		switch p := payload.(type) {
		case sim.ArrivalPayload:
			logrus.Infof("[%s] %s arrived (letter=%v id=%v)", p.Time, p.StudentID, p.HasExcuseLetter, p.HasValidID)
		case sim.CompletionPayload:
			logrus.Infof("%s: %s (%s), waited %.1f min", p.StudentID, p.Status, p.Reason, p.WaitTime)
		case sim.Snapshot:
			logrus.Debugf("in system: %d, issued: %d", p.PatientsInSystem, p.CertificatesIssued)
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random case generation")
	runCmd.Flags().Float64Var(&durationHours, "duration-hours", 8, "Simulated clinic day length (hours)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// staffing
	runCmd.Flags().IntVar(&nurses, "nurses", 3, "Nurse pool capacity")
	runCmd.Flags().IntVar(&doctors, "doctors", 1, "Doctor pool capacity")
	runCmd.Flags().IntVar(&staff, "staff", 1, "Clerical staff pool capacity")

	// service times
	runCmd.Flags().Float64Var(&nurseMinutes, "nurse-minutes", 10, "Nurse assessment time per case (minutes)")
	runCmd.Flags().Float64Var(&doctorMinutes, "doctor-minutes", 15, "Doctor review time per case (minutes)")
	runCmd.Flags().Float64Var(&staffMinutes, "staff-minutes", 5, "Record-keeping time per case (minutes)")

	// scenario selection
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset (see `clinic-sim scenarios`)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML scenario file")
	runCmd.Flags().BoolVar(&showEvents, "events", false, "Log per-case arrival and completion events")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
