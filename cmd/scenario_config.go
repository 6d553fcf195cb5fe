package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clinic-sim/clinic-sim/sim"
	"github.com/clinic-sim/clinic-sim/sim/scenario"
)

// ScenarioFile is the on-disk form of a clinic scenario. Omitted fields fall
// back to the defaults in scenario.Scenario's mapping.
type ScenarioFile struct {
	Name               string  `yaml:"name"`
	Description        string  `yaml:"description,omitempty"`
	DurationHours      float64 `yaml:"duration_hours"`
	Nurses             int     `yaml:"nurses"`
	Doctors            int     `yaml:"doctors"`
	Staff              int     `yaml:"staff"`
	ArrivalRateMinutes float64 `yaml:"arrival_rate_minutes"`
	SimpleCaseShare    float64 `yaml:"simple_case_share,omitempty"`
}

// Config maps the file onto a simulation configuration via the same
// translation the built-in presets use.
func (sf ScenarioFile) Config(seed int64) sim.Config {
	share := sf.SimpleCaseShare
	if share == 0 {
		share = 0.7
	}
	s := scenario.Scenario{
		Name:               sf.Name,
		Description:        sf.Description,
		DurationHours:      sf.DurationHours,
		Nurses:             sf.Nurses,
		Doctors:            sf.Doctors,
		Staff:              sf.Staff,
		ArrivalRateMinutes: sf.ArrivalRateMinutes,
		SimpleCaseShare:    share,
	}
	return s.Config(seed)
}

// LoadScenarioFile reads and strictly decodes a scenario YAML file; unknown
// keys are an error so typos surface immediately.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var sf ScenarioFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	return &sf, nil
}
