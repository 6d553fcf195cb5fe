package sim

import "fmt"

// ConfigError reports an invalid simulation configuration. It is returned
// before any simulation activity begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// InvalidDelayError reports a negative delay passed to the scheduler.
// This is a programming defect, not a recoverable condition.
type InvalidDelayError struct {
	Delay float64
}

func (e *InvalidDelayError) Error() string {
	return fmt.Sprintf("scheduler: negative delay %.4f requested", e.Delay)
}

// InvariantViolationError reports a broken scheduling invariant, such as the
// virtual clock moving backward or a pool releasing more units than it holds.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "scheduling invariant violated: " + e.Detail
}
