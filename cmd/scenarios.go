package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinic-sim/clinic-sim/sim/scenario"
)

// scenariosCmd lists the built-in scenario presets and the typical-case
// catalog available to `run --scenario` and `triage --case`.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List scenario presets and typical cases",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Scenario presets:")
		for _, name := range scenario.Names() {
			s, _ := scenario.Lookup(name)
			fmt.Printf("  %-20s %s — %s\n", name, s.Name, s.Description)
		}
		fmt.Println("\nTypical cases:")
		for _, name := range scenario.CaseNames() {
			tc, _ := scenario.LookupCase(name)
			fmt.Printf("  %-22s %s — %s\n", name, tc.Name, tc.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
