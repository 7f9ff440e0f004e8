// Package config loads the optional driver configuration file. All fields
// have working defaults; a config file is only needed to point the driver at
// a non-standard controller or sysfs root.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// Config is the full driver configuration document.
type Config struct {
	// ControllerLabel is the gpiochip label the discovery scan matches.
	ControllerLabel string `yaml:"controller_label,omitempty" validate:"omitempty,chip_label"`
	// SysfsRoot overrides the sysfs GPIO ABI location, mainly for tests.
	SysfsRoot string `yaml:"sysfs_root,omitempty"`
	// LogLevel selects the zerolog level name.
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	// Timeout bounds the whole run, in seconds.
	Timeout int `yaml:"timeout,omitempty" validate:"omitempty,min=1,max=3600"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default returns the built-in configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Timeout:  30,
	}
}

// Load reads a configuration file from disk, validates it, and returns the
// resulting model with defaults applied to unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gpioerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, gpioerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
