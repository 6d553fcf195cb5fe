package sim

// PeakWindow is a time-of-day interval (in hours) during which student
// arrivals speed up. Windows are checked against (virtual_minutes/60) mod 24.
type PeakWindow struct {
	StartHour float64 `yaml:"start_hour"`
	EndHour   float64 `yaml:"end_hour"`
}

// Config holds all parameters for one simulation run.
type Config struct {
	DurationMinutes float64 // total simulated time

	NurseCapacity  int
	DoctorCapacity int
	StaffCapacity  int

	NurseProcessTime   float64 // minutes of nurse assessment per case
	DoctorProcessTime  float64 // minutes of doctor review per case
	StaffProcessTime   float64 // minutes of record keeping per case
	VisualizationDelay float64 // small fixed delay added to each service stage

	PeakWindows       []PeakWindow
	PeakArrivalMin    float64 // minutes between arrivals during peak hours
	PeakArrivalMax    float64
	OffPeakArrivalMin float64
	OffPeakArrivalMax float64

	// SimpleCaseProbability is the chance a synthesized case draws only
	// routine symptoms. Scenario presets vary this with expected load.
	SimpleCaseProbability float64

	Seed int64
}

// DefaultConfig mirrors the clinic's observed operating parameters: an
// 8-hour day, 3 nurses, 1 doctor, 1 clerical staff, and the historical
// arrival pattern with late-morning and afternoon peaks.
func DefaultConfig() Config {
	return Config{
		DurationMinutes:    8 * 60,
		NurseCapacity:      3,
		DoctorCapacity:     1,
		StaffCapacity:      1,
		NurseProcessTime:   10,
		DoctorProcessTime:  15,
		StaffProcessTime:   5,
		VisualizationDelay: 1.5,
		PeakWindows: []PeakWindow{
			{StartHour: 10, EndHour: 11.5},
			{StartHour: 13.5, EndHour: 17},
		},
		PeakArrivalMin:        5,
		PeakArrivalMax:        10,
		OffPeakArrivalMin:     15,
		OffPeakArrivalMax:     25,
		SimpleCaseProbability: 0.7,
		Seed:                  42,
	}
}

// Validate rejects configurations before any simulation activity begins.
func (c *Config) Validate() error {
	switch {
	case c.DurationMinutes <= 0:
		return &ConfigError{Field: "duration", Reason: "must be positive"}
	case c.NurseCapacity <= 0:
		return &ConfigError{Field: "nurse capacity", Reason: "must be positive"}
	case c.DoctorCapacity <= 0:
		return &ConfigError{Field: "doctor capacity", Reason: "must be positive"}
	case c.StaffCapacity <= 0:
		return &ConfigError{Field: "staff capacity", Reason: "must be positive"}
	case c.NurseProcessTime < 0 || c.DoctorProcessTime < 0 || c.StaffProcessTime < 0:
		return &ConfigError{Field: "process time", Reason: "must not be negative"}
	case c.VisualizationDelay < 0:
		return &ConfigError{Field: "visualization delay", Reason: "must not be negative"}
	case c.PeakArrivalMin <= 0 || c.PeakArrivalMax < c.PeakArrivalMin:
		return &ConfigError{Field: "peak arrival rate", Reason: "bounds must be positive and ordered"}
	case c.OffPeakArrivalMin <= 0 || c.OffPeakArrivalMax < c.OffPeakArrivalMin:
		return &ConfigError{Field: "off-peak arrival rate", Reason: "bounds must be positive and ordered"}
	case c.SimpleCaseProbability < 0 || c.SimpleCaseProbability > 1:
		return &ConfigError{Field: "simple case probability", Reason: "must be in [0,1]"}
	}
	return nil
}

// IsPeakHour reports whether the given virtual time (minutes) falls inside a
// configured peak window.
func (c *Config) IsPeakHour(minutes float64) bool {
	hour := (minutes / 60)
	hour = hour - 24*float64(int(hour/24))
	for _, w := range c.PeakWindows {
		if w.StartHour <= hour && hour <= w.EndHour {
			return true
		}
	}
	return false
}
