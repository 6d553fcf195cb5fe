package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioFile(t *testing.T) {
	path := writeScenarioFile(t, `
name: Exam Week
description: Crunch time at the clinic
duration_hours: 10
nurses: 4
doctors: 2
staff: 2
arrival_rate_minutes: 8
simple_case_share: 0.5
`)

	sf, err := LoadScenarioFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Exam Week", sf.Name)
	assert.Equal(t, 10.0, sf.DurationHours)
	assert.Equal(t, 4, sf.Nurses)
	assert.Equal(t, 8.0, sf.ArrivalRateMinutes)

	cfg := sf.Config(99)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 600.0, cfg.DurationMinutes)
	assert.Equal(t, 0.5, cfg.SimpleCaseProbability)
}

func TestLoadScenarioFile_UnknownKeyRejected(t *testing.T) {
	path := writeScenarioFile(t, `
name: Typo Day
duration_hours: 8
nurses: 2
doctors: 1
staff: 1
arrival_rate_minutes: 15
docters: 3
`)

	_, err := LoadScenarioFile(path)
	assert.Error(t, err, "a misspelled key must not be silently dropped")
}

func TestLoadScenarioFile_MissingFile(t *testing.T) {
	_, err := LoadScenarioFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestScenarioFileConfig_DefaultSimpleCaseShare(t *testing.T) {
	sf := ScenarioFile{
		Name:               "No Share Given",
		DurationHours:      8,
		Nurses:             2,
		Doctors:            1,
		Staff:              1,
		ArrivalRateMinutes: 15,
	}

	cfg := sf.Config(1)

	assert.Equal(t, 0.7, cfg.SimpleCaseProbability)
}
