package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clinic-sim/clinic-sim/sim/scenario"
	"github.com/clinic-sim/clinic-sim/sim/triage"
)

var (
	caseFile   string // YAML file holding a single case's facts
	casePreset string // Named case from the typical-case catalog
)

// triageCmd evaluates one case through the expert pipeline, without running
// a simulation, and prints the full decision trail.
var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Evaluate a single case through the triage pipeline",
	Run: func(cmd *cobra.Command, args []string) {
		facts, err := resolveCase()
		if err != nil {
			logrus.Fatalf("Could not load case: %v", err)
		}

		final, history := triage.NewPipeline().Evaluate(facts)
		for _, rec := range history {
			fmt.Printf("%-6s : %s", rec.Stage, rec.Decision)
			if rec.Complexity != "" {
				fmt.Printf(" (%s)", rec.Complexity)
			}
			if rec.Severity > 0 {
				fmt.Printf(" severity=%.2f", rec.Severity)
			}
			fmt.Printf(" — %s\n", rec.Reason)
		}
		fmt.Printf("final  : %s", final.Decision)
		if final.ApprovedBy != "" {
			fmt.Printf(" by %s, record %s", final.ApprovedBy, final.RecordID)
		} else if final.Reason != "" {
			fmt.Printf(" — %s", final.Reason)
		}
		fmt.Println()
	},
}

// resolveCase loads the case facts from --case-file or --case.
func resolveCase() (triage.Facts, error) {
	switch {
	case caseFile != "":
		return loadCaseFile(caseFile)
	case casePreset != "":
		tc, ok := scenario.LookupCase(casePreset)
		if !ok {
			return triage.Facts{}, fmt.Errorf("unknown case %q (see `clinic-sim scenarios`)", casePreset)
		}
		return tc.Facts("S0000", time.Now().UTC().Truncate(time.Minute)), nil
	default:
		return triage.Facts{}, fmt.Errorf("one of --case-file or --case is required")
	}
}

func loadCaseFile(path string) (triage.Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return triage.Facts{}, fmt.Errorf("read case file: %w", err)
	}
	var f triage.Facts
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return triage.Facts{}, fmt.Errorf("parse case file %s: %w", path, err)
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now().UTC().Truncate(time.Minute)
	}
	return f, nil
}

func init() {
	triageCmd.Flags().StringVar(&caseFile, "case-file", "", "YAML file with the case facts")
	triageCmd.Flags().StringVar(&casePreset, "case", "", "Named case from the typical-case catalog")

	rootCmd.AddCommand(triageCmd)
}
