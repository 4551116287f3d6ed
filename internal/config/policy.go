package config

import (
	"fmt"
	"os"

	"passguard/internal/common"
	"passguard/internal/strength"

	"gopkg.in/yaml.v3"
)

// ResolvePolicy loads the policy from the provided path, falling back
// to the global configuration's policyPath, then to the defaults
func ResolvePolicy(flagPath string) (strength.Policy, error) {
	path := flagPath
	if path == "" && Global.PolicyPath != nil {
		path = *Global.PolicyPath
	}
	return LoadPolicy(path)
}

// LoadPolicy reads a yaml policy file over the defaults; fields left
// out of the file keep their DefaultPolicy values
func LoadPolicy(from string) (strength.Policy, error) {
	policy := strength.DefaultPolicy()
	if from == "" {
		return policy, nil
	}

	from, err := common.ToAbsolutePath(from)
	if err != nil {
		return policy, fmt.Errorf("failed to resolve policy path: %s", err)
	}
	contents, err := os.ReadFile(from)
	if err != nil {
		return policy, fmt.Errorf("failed to read policy file at path[%s]: %s", from, err)
	}
	if err := yaml.Unmarshal(contents, &policy); err != nil {
		return policy, fmt.Errorf("failed to parse policy file at path[%s]: %s", from, err)
	}

	return policy, nil
}
