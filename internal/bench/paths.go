package bench

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "c4solver"

// DefaultDataDir returns the platform-specific data directory used
// when -stats-db is not given, adapted from the teacher's
// storage.GetDataDir (same per-OS layout, NNUE-network subdirectory
// dropped since this solver has no network assets to locate):
//   - macOS: ~/Library/Application Support/c4solver/
//   - Linux: ~/.local/share/c4solver/ (or $XDG_DATA_HOME/c4solver)
//   - Windows: %APPDATA%/c4solver/
func DefaultDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName, "db")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}
