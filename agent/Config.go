package agent

import (
	"encoding/json"
)

// Config represents a configuration for creating an agent
type Config interface {
	// Validate returns an error describing whether or not the
	// configuration is valid.
	Validate() error
}

// MarshalParameterSettings serializes a Config for persistence.
// Concrete agents can use this to implement SaveParameterSettings.
func MarshalParameterSettings(c Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(c, "", "\t")
}
