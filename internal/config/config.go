package config

import (
	"errors"
	"fmt"
	"os"

	"passguard/internal/common"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var Global global

type global struct {
	PolicyPath *string `json:"policyPath" yaml:"policyPath"`
	SourcePath *string `json:"sourcePath" yaml:"sourcePath"`
}

func (g *global) IsGlobalConfigExists() bool {
	return g.SourcePath != nil
}

func LoadGlobal(from string) error {
	logrus.Debugf("loading global configuration from path[%s]...", from)

	from, err := common.ToAbsolutePath(from)
	if err != nil {
		return fmt.Errorf("failed to resolve configuration path: %s", err)
	}
	fi, err := os.Stat(from)
	if errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("config file not found at path[%s], defaults will be used", from)
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check configuration file: %s", err)
	} else if fi.IsDir() {
		logrus.Warnf("config file path[%s] led to a directory, defaults will be used", from)
		return nil
	}
	viper.SetConfigFile(from)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %s", err)
	}
	if err := viper.Unmarshal(&Global); err != nil {
		return fmt.Errorf("failed to parse configuration file: %s", err)
	}
	Global.SourcePath = &from

	return nil
}
