package config

import (
	"os"
	"path/filepath"
)

// DatabasePath returns the goal database path from the TEMPO_DB env var,
// falling back to the XDG data directory.
func DatabasePath() string {
	if env := os.Getenv("TEMPO_DB"); env != "" {
		return env
	}
	return filepath.Join(dataHome(), "tempo", "tempo.db")
}

func dataHome() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}
