package config

import "fmt"

var (
	DistributionBranch  = "dev"
	DistributionVersion = "0.0.0"
)

func GetVersion() string {
	return fmt.Sprintf("%s-%s", DistributionVersion, DistributionBranch)
}
