package config

import (
	"os"
	"path/filepath"
	"testing"

	"passguard/internal/strength"
)

func TestLoadPolicyDefaults(t *testing.T) {
	policy, err := LoadPolicy("")
	if err != nil {
		t.Fatalf("expected loading to succeed, got: %s", err)
	}
	if policy.MinLength != strength.DefaultPolicy().MinLength {
		t.Errorf("expected the default minimum length, got %v", policy.MinLength)
	}
}

func TestLoadPolicyOverrides(t *testing.T) {
	policyPath := filepath.Join(t.TempDir(), "policy.yaml")
	contents := "minLength: 20\ndenylist:\n  - acmecorp\n"
	if err := os.WriteFile(policyPath, []byte(contents), 0o600); err != nil {
		t.Fatalf("expected writing the fixture to succeed, got: %s", err)
	}

	policy, err := LoadPolicy(policyPath)
	if err != nil {
		t.Fatalf("expected loading to succeed, got: %s", err)
	}
	if policy.MinLength != 20 {
		t.Errorf("expected the overridden minimum length, got %v", policy.MinLength)
	}
	if len(policy.Denylist) != 1 || policy.Denylist[0] != "acmecorp" {
		t.Errorf("expected the overridden denylist, got %v", policy.Denylist)
	}

	// fields the file leaves out keep their defaults
	if policy.RepeatThreshold != strength.DefaultPolicy().RepeatThreshold {
		t.Errorf("expected the default repeat threshold, got %v", policy.RepeatThreshold)
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	if _, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected an error for a missing policy file")
	}
}

func TestLoadPolicyMalformedFile(t *testing.T) {
	policyPath := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(policyPath, []byte("minLength: [not a number"), 0o600); err != nil {
		t.Fatalf("expected writing the fixture to succeed, got: %s", err)
	}
	if _, err := LoadPolicy(policyPath); err == nil {
		t.Errorf("expected an error for a malformed policy file")
	}
}
