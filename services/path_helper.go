package services

import (
	"os"
	"os/exec"
	"path/filepath"
)

// findExecutable searches for an executable in PATH and common install dirs.
// Packaged macOS apps don't inherit the user's PATH.
func findExecutable(name string) (string, bool) {
	if path, err := exec.LookPath(name); err == nil {
		return path, true
	}

	homeDir, _ := os.UserHomeDir()
	searchPaths := []string{
		"/opt/homebrew/bin", // Homebrew (Apple Silicon)
		"/usr/local/bin",    // Homebrew (Intel) / system
		"/usr/bin",
		filepath.Join(homeDir, ".local", "bin"),
	}
	for _, dir := range searchPaths {
		fullPath := filepath.Join(dir, name)
		if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
			return fullPath, true
		}
	}
	return "", false
}
