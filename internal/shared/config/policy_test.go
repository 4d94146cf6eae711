package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interview.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write policy file: %v", err)
	}
	return path
}

func TestLoadPolicyMissingFileUsesDefaults(t *testing.T) {
	policy := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
	if policy != DefaultPolicy() {
		t.Fatalf("expected defaults, got %+v", policy)
	}
}

func TestLoadPolicyOverrides(t *testing.T) {
	path := writePolicyFile(t, "model: gpt-4o-mini\ntemperature: 0.7\nmax_turns: 10\n")
	policy := LoadPolicy(path)
	if policy.Model != "gpt-4o-mini" {
		t.Fatalf("expected model override, got %q", policy.Model)
	}
	if policy.Temperature != 0.7 {
		t.Fatalf("expected temperature override, got %v", policy.Temperature)
	}
	if policy.MaxTurns != 10 {
		t.Fatalf("expected max_turns override, got %d", policy.MaxTurns)
	}
}

func TestLoadPolicyPartialFileKeepsDefaults(t *testing.T) {
	path := writePolicyFile(t, "max_turns: 5\n")
	policy := LoadPolicy(path)
	if policy.Model != DefaultPolicy().Model {
		t.Fatalf("expected default model, got %q", policy.Model)
	}
	if policy.Temperature != DefaultPolicy().Temperature {
		t.Fatalf("expected default temperature, got %v", policy.Temperature)
	}
	if policy.MaxTurns != 5 {
		t.Fatalf("expected max_turns 5, got %d", policy.MaxTurns)
	}
}

func TestLoadPolicyMalformedFileUsesDefaults(t *testing.T) {
	path := writePolicyFile(t, "model: [unclosed\n")
	policy := LoadPolicy(path)
	if policy != DefaultPolicy() {
		t.Fatalf("expected defaults for malformed file, got %+v", policy)
	}
}

func TestLoadPolicyNegativeMaxTurnsDisablesCap(t *testing.T) {
	path := writePolicyFile(t, "max_turns: -3\n")
	policy := LoadPolicy(path)
	if policy.MaxTurns != 0 {
		t.Fatalf("expected cap disabled, got %d", policy.MaxTurns)
	}
}
