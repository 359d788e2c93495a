// ABOUTME: Settings loading with defaults, YAML file, env expansion, CLI overrides
// ABOUTME: Overrides win over the file; the file wins over built-in defaults

package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the file nor the overrides set a field.
const (
	DefaultPrecision      = 10
	DefaultMaxInputValue  = "1e999"
	DefaultMaxHistorySize = 1000
)

// Settings holds the merged calculator configuration.
type Settings struct {
	Precision      int    `yaml:"precision,omitempty"`
	MaxInputValue  string `yaml:"max_input_value,omitempty"`
	MaxHistorySize int    `yaml:"max_history_size,omitempty"`
	AutoSave       *bool  `yaml:"auto_save,omitempty"`
	BaseDir        string `yaml:"base_dir,omitempty"`

	maxInput decimal.Decimal
}

// Load reads the settings file at path (missing file is fine), layers the
// given CLI overrides on top, fills defaults, and validates the result.
func Load(path string, overrides *Settings) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	ResolveEnvVars(s)
	s.merge(overrides)
	s.applyDefaults()

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// merge layers non-zero override values onto s.
func (s *Settings) merge(overrides *Settings) {
	if overrides == nil {
		return
	}
	if overrides.Precision != 0 {
		s.Precision = overrides.Precision
	}
	if overrides.MaxInputValue != "" {
		s.MaxInputValue = overrides.MaxInputValue
	}
	if overrides.MaxHistorySize != 0 {
		s.MaxHistorySize = overrides.MaxHistorySize
	}
	if overrides.AutoSave != nil {
		s.AutoSave = overrides.AutoSave
	}
	if overrides.BaseDir != "" {
		s.BaseDir = overrides.BaseDir
	}
}

func (s *Settings) applyDefaults() {
	if s.Precision == 0 {
		s.Precision = DefaultPrecision
	}
	if s.MaxInputValue == "" {
		s.MaxInputValue = DefaultMaxInputValue
	}
	if s.MaxHistorySize == 0 {
		s.MaxHistorySize = DefaultMaxHistorySize
	}
	if s.AutoSave == nil {
		t := true
		s.AutoSave = &t
	}
	if s.BaseDir == "" {
		s.BaseDir = DefaultBaseDir()
	}
}

func (s *Settings) validate() error {
	if s.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", s.Precision)
	}
	if s.MaxHistorySize < 1 {
		return fmt.Errorf("max_history_size must be at least 1, got %d", s.MaxHistorySize)
	}
	maxInput, err := decimal.NewFromString(s.MaxInputValue)
	if err != nil {
		return fmt.Errorf("invalid max_input_value %q: %w", s.MaxInputValue, err)
	}
	if maxInput.IsNegative() {
		return fmt.Errorf("max_input_value must not be negative, got %s", s.MaxInputValue)
	}
	s.maxInput = maxInput
	return nil
}

// MaxInput returns the parsed magnitude cap for operands.
func (s *Settings) MaxInput() decimal.Decimal {
	return s.maxInput
}

// AutoSaveEnabled reports whether history is persisted after each calculation.
func (s *Settings) AutoSaveEnabled() bool {
	return s.AutoSave != nil && *s.AutoSave
}
