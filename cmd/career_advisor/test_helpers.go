package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the career_advisor binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "career_advisor"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeProfileFile writes a valid profile JSON file into dir and returns its path
func writeProfileFile(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "profile.json")
	profile := `{
		"skills": ["Python", "SQL"],
		"experience_level": "mid",
		"education": "bachelor",
		"preferred_industries": ["Technology"],
		"interests": ["data analysis"]
	}`
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatalf("failed to write profile file: %v", err)
	}
	return path
}
