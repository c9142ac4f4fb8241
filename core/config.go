package core

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "wildrydes.config.yml"

type Config struct {
	Host         string `yaml:"host" json:"host"`
	Port         int    `yaml:"port" json:"port"`
	DebugHeaders bool   `yaml:"debugHeaders" json:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs" json:"debugLogs"`
}

func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         80,
		DebugHeaders: false,
		DebugLogs:    false,
	}
}

// LoadConfig never fails. A missing or unreadable file yields the defaults.
func LoadConfig(path string) Config {
	cfg, err := ReadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// ReadConfig reads and validates the file at path. Empty fields fall back to
// their defaults.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	defaults := DefaultConfig()
	if cfg.Host == "" {
		cfg.Host = defaults.Host
	}
	if cfg.Port == 0 {
		cfg.Port = defaults.Port
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range 1-65535", ErrInvalidConfig, c.Port)
	}
	if c.Host != "" && net.ParseIP(c.Host) == nil && !hostnamePattern.MatchString(c.Host) {
		return fmt.Errorf("%w: invalid host %q", ErrInvalidConfig, c.Host)
	}
	return nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
