package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/carlosrabelo/capi/domain/entities"
)

// Config defines the device inventory with global credential defaults
type Config struct {
	Username       string                  `yaml:"username"`
	Password       string                  `yaml:"password"`
	EnablePassword string                  `yaml:"enable_password"`
	Insecure       bool                    `yaml:"insecure"`
	Devices        []entities.DeviceConfig `yaml:"devices"`
}

// Load loads and validates the device inventory from a YAML file. Per-device
// credentials override the global ones; verbosityLevel is applied only to
// the device matching target so other entries stay quiet.
func Load(yamlFile, target string, verbosityLevel int) (*Config, error) {
	data, err := os.ReadFile(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %v", yamlFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v", err)
	}

	if len(cfg.Devices) == 0 {
		return nil, fmt.Errorf("no devices defined in %s", yamlFile)
	}

	for i := range cfg.Devices {
		dev := &cfg.Devices[i]
		dev.Host = strings.TrimSpace(dev.Host)
		if dev.Host == "" {
			return nil, fmt.Errorf("host is required for device %d", i)
		}
		if dev.Username == "" {
			dev.Username = cfg.Username
		}
		if dev.Password == "" {
			dev.Password = cfg.Password
		}
		if dev.EnablePassword == "" {
			dev.EnablePassword = cfg.EnablePassword
		}
		if dev.Username == "" {
			return nil, fmt.Errorf("username is required for device %s", dev.Host)
		}
		if dev.Password == "" {
			return nil, fmt.Errorf("password is required for device %s", dev.Host)
		}
		if cfg.Insecure {
			dev.Insecure = true
		}
		if target == "" || dev.Host == target {
			dev.VerbosityLevel = verbosityLevel
		}
	}
	return &cfg, nil
}

// FindDevice returns the inventory entry whose host matches target
func (c *Config) FindDevice(target string) (entities.DeviceConfig, bool) {
	for _, dev := range c.Devices {
		if dev.Host == target {
			return dev, true
		}
	}
	return entities.DeviceConfig{}, false
}
