package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

func TestRecommendCommand_MissingProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "recommend")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "profile is required")
}

func TestRecommendCommand_ProfileNotFound(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "recommend", "--profile", "no-such-file.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read profile file")
}

func TestRecommendCommand_JSONOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)
	profilePath := writeProfileFile(t, t.TempDir())

	cmd := exec.Command(binaryPath, "recommend", "--profile", profilePath, "--top", "3")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	var recs []types.Recommendation
	err = json.Unmarshal(output, &recs)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchPercentage, recs[i].MatchPercentage)
	}
}
