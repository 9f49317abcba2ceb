package model

import "fmt"

// ConfigError reports an invalid vehicle profile or planner setting. It is
// the only error class that crosses the planning API boundary: external
// lookup failures are absorbed with fallback data, but a malformed profile
// is a caller defect and is never guessed around.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}
