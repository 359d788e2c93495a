// ABOUTME: Standard filesystem paths for abaco configuration and data
// ABOUTME: Everything lives under the base directory, ~/.abaco by default

package config

import (
	"os"
	"path/filepath"
)

const baseDirName = ".abaco"

// DefaultBaseDir returns the default base directory (~/.abaco).
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", baseDirName)
	}
	return filepath.Join(home, baseDirName)
}

// ConfigFile returns the path to the settings file under the default base
// directory.
func ConfigFile() string {
	return filepath.Join(DefaultBaseDir(), "config.yaml")
}

// LogDir returns the log directory under the configured base directory.
func (s *Settings) LogDir() string {
	return filepath.Join(s.BaseDir, "logs")
}

// LogFile returns the calculator log file path.
func (s *Settings) LogFile() string {
	return filepath.Join(s.LogDir(), "abaco.log")
}

// HistoryDir returns the history directory under the configured base
// directory.
func (s *Settings) HistoryDir() string {
	return filepath.Join(s.BaseDir, "history")
}

// HistoryFile returns the CSV history file path.
func (s *Settings) HistoryFile() string {
	return filepath.Join(s.HistoryDir(), "calculator_history.csv")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
