package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"profile": "profile.json",
		"top_n": 3,
		"port": 9090,
		"seed": 42,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "profile.json", cfg.Profile)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config is valid", Config{}, ""},
		{"valid values", Config{TopN: 5, MaxGaps: 10, Port: 8080}, ""},
		{"negative top_n", Config{TopN: -1}, "'top_n' must be non-negative"},
		{"negative max_gaps", Config{MaxGaps: -2}, "'max_gaps' must be non-negative"},
		{"port out of range", Config{Port: 70000}, "'port' must be between"},
		{"missing profile file", Config{Profile: "/does/not/exist.json"}, "profile file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_ProfileFileExists(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{}`), 0644))

	cfg := Config{Profile: tmpFile}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Profile: "default_profile.json",
		TopN:    5,
		MaxGaps: 10,
		Port:    8080,
		Seed:    7,
	}

	t.Run("empty config takes all defaults", func(t *testing.T) {
		cfg := Config{}
		merged := cfg.MergeWithDefaults(defaults)

		assert.Equal(t, "default_profile.json", merged.Profile)
		assert.Equal(t, 5, merged.TopN)
		assert.Equal(t, 10, merged.MaxGaps)
		assert.Equal(t, 8080, merged.Port)
		assert.Equal(t, int64(7), merged.Seed)
	})

	t.Run("set fields win over defaults", func(t *testing.T) {
		cfg := Config{Profile: "mine.json", TopN: 3, Port: 9999}
		merged := cfg.MergeWithDefaults(defaults)

		assert.Equal(t, "mine.json", merged.Profile)
		assert.Equal(t, 3, merged.TopN)
		assert.Equal(t, 9999, merged.Port)
		assert.Equal(t, 10, merged.MaxGaps)
	})
}
