package config

import (
	"os"
)

// ProjectConfigPaths returns the config file names looked up in the current
// directory, in order of preference.
func ProjectConfigPaths() []string {
	return []string{
		".changelog-split.yml",
		".changelog-split.yaml",
		".changelog-split.json",
	}
}

// FindProjectConfig returns the first existing project config file, or ""
// when there is none.
func FindProjectConfig() string {
	for _, path := range ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
