package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGlobalExpandsHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(func() { Global = global{} })

	configDir := filepath.Join(home, ".passguard")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		t.Fatalf("expected creating the fixture directory to succeed, got: %s", err)
	}
	policyPath := filepath.Join(configDir, "policy.yaml")
	contents := "policyPath: " + policyPath + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config"), []byte(contents), 0o600); err != nil {
		t.Fatalf("expected writing the fixture to succeed, got: %s", err)
	}

	if err := LoadGlobal("~/.passguard/config"); err != nil {
		t.Fatalf("expected loading to succeed, got: %s", err)
	}
	if Global.PolicyPath == nil || *Global.PolicyPath != policyPath {
		t.Errorf("expected the policy path from the home config, got %v", Global.PolicyPath)
	}
}

func TestLoadGlobalMissingFile(t *testing.T) {
	t.Cleanup(func() { Global = global{} })

	if err := LoadGlobal(filepath.Join(t.TempDir(), "config")); err != nil {
		t.Errorf("expected a missing config file to fall back to defaults, got: %s", err)
	}
	if Global.PolicyPath != nil {
		t.Errorf("expected no policy path without a config file, got %v", Global.PolicyPath)
	}
}
