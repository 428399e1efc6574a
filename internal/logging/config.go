// Package logging provides structured file logging for segbar.
package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/segbar/internal/config"
)

// Config selects where and how much segbar logs. Each process writes one file
// named after its command and PID.
type Config struct {
	Enabled bool
	// Level is one of debug, info, warn or error.
	Level    string
	MaxFiles int
	Command  string
	PID      int
	// Dir overrides LogDir; tests point it at a temp dir.
	Dir string
}

// DefaultConfig returns logging disabled at info level.
func DefaultConfig() Config {
	return Config{
		Enabled:  false,
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads the logging_* keys. SEGBAR_DEBUG forces the debug level.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", "info")
	cfg.MaxFiles = config.GetInt("logging_max_files", 10)
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir returns {state_dir}/logs, or a segbar directory under the system
// temp dir when the state dir cannot be written.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if err := os.MkdirAll(dir, 0700); err == nil && writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "segbar", "logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".write-check-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
