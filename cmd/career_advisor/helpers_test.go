package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/config"
)

func TestLoadProfile(t *testing.T) {
	path := writeProfileFile(t, t.TempDir())

	profile, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "mid", profile.ExperienceLevel)
	assert.Contains(t, profile.Skills, "Python")
}

func TestLoadProfile_FileNotFound(t *testing.T) {
	_, err := loadProfile("no-such-file.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}

func TestLoadProfile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := loadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profile JSON")
}

func TestLoadProfile_InvalidExperienceLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"experience_level": "guru"}`), 0o644))

	_, err := loadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestLoadConfigDefaults_NoFile(t *testing.T) {
	flags := config.Config{TopN: 3}

	cfg, err := loadConfigDefaults("", flags)
	require.NoError(t, err)
	assert.Equal(t, flags, cfg)
}

func TestLoadConfigDefaults_MergesUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"top_n": 7, "seed": 42}`), 0o644))

	cfg, err := loadConfigDefaults(path, config.Config{TopN: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopN, "flag value wins")
	assert.Equal(t, int64(42), cfg.Seed, "file fills unset values")
}

func TestLoadConfigDefaults_VerboseFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verbose": true}`), 0o644))

	cfg, err := loadConfigDefaults(path, config.Config{})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose, "file value applies when flag is unset")

	cfg, err = loadConfigDefaults(path, config.Config{Verbose: true})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigDefaults_FileNotFound(t *testing.T) {
	_, err := loadConfigDefaults("no-such-config.json", config.Config{})
	assert.Error(t, err)
}
