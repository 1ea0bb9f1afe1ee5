package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/harshithkalluri/shiftweek/pkg/core/scheduling"
)

// Config represents the application configuration
type Config struct {
	// MinEmployeesPerShift is the staffing minimum per shift slot
	MinEmployeesPerShift int `yaml:"minEmployeesPerShift" validate:"required,min=1"`

	// MaxDaysPerWeek caps how many days one employee works per week
	MaxDaysPerWeek int `yaml:"maxDaysPerWeek" validate:"required,min=1,max=7"`

	// RosterPath is the default roster file used when no --roster flag is given
	RosterPath string `yaml:"rosterPath,omitempty"`

	// WeekStart is the default Monday the generated week begins on
	// (YYYY-MM-DD). Commands may override it per run.
	WeekStart string `yaml:"weekStart,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		MinEmployeesPerShift: scheduling.DefaultMinEmployeesPerShift,
		MaxDaysPerWeek:       scheduling.DefaultMaxDaysPerWeek,
	}
}

// Load loads and validates the configuration from shiftweek.yaml.
// It looks in the current directory first, then the user's home directory,
// and falls back to defaults when no config file exists.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile searches for shiftweek.yaml in the current directory and
// home directory
func findConfigFile() (string, error) {
	configFileName := "shiftweek.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
