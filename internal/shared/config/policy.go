package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy tunes interview behavior. Values come from an optional YAML file so
// operators can retune without a rebuild.
type Policy struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	// MaxTurns caps the number of question/answer cycles; 0 means no cap.
	MaxTurns int `yaml:"max_turns"`
}

// DefaultPolicy mirrors the defaults the service shipped with.
func DefaultPolicy() Policy {
	return Policy{
		Model:       "gpt-4o",
		Temperature: 0.4,
		MaxTurns:    0,
	}
}

// LoadPolicy reads a policy file if present, falling back to defaults.
// A malformed file is reported and ignored rather than failing startup.
func LoadPolicy(path string) Policy {
	policy := DefaultPolicy()
	raw, err := os.ReadFile(path)
	if err != nil {
		return policy
	}
	if err := yaml.Unmarshal(raw, &policy); err != nil {
		log.Printf("policy file %s is invalid, using defaults: %v", path, err)
		return DefaultPolicy()
	}
	if policy.Model == "" {
		policy.Model = DefaultPolicy().Model
	}
	if policy.Temperature <= 0 {
		policy.Temperature = DefaultPolicy().Temperature
	}
	if policy.MaxTurns < 0 {
		policy.MaxTurns = 0
	}
	return policy
}
