package gaps

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningPath_KnownSkill(t *testing.T) {
	a := newTestAnalyzer(t)

	path := a.LearningPath("Machine Learning", 3, 7)

	assert.Equal(t, "Machine Learning", path.Skill)
	assert.Equal(t, 3, path.CurrentLevel)
	assert.Equal(t, 7, path.TargetLevel)
	// 16 weeks / 10 levels = 1.6 weeks per level, 4 levels = 6.4, truncated.
	assert.Equal(t, 6, path.TotalWeeks)
	assert.Equal(t, 8, path.Difficulty)

	require.Len(t, path.Milestones, 4)
	for i, milestone := range path.Milestones {
		assert.Equal(t, 4+i, milestone.Level)
		assert.Equal(t, fmt.Sprintf("Reach level %d in Machine Learning", 4+i), milestone.Description)
		assert.InDelta(t, 1.6, milestone.EstimatedWeeks, 1e-9)
		assert.Len(t, milestone.Resources, resourcesPerMilestone)
	}

	assert.Contains(t, path.CareerImpact, "Data Scientist")
	assert.Contains(t, path.RelatedSkills, "Statistics")
}

func TestLearningPath_UnknownSkillDefaults(t *testing.T) {
	a := newTestAnalyzer(t)

	path := a.LearningPath("Blacksmithing", 1, 3)

	// 8 default weeks / 10 levels = 0.8 per level, gap 2 = 1.6, truncated.
	assert.Equal(t, 1, path.TotalWeeks)
	assert.Equal(t, defaultDifficulty, path.Difficulty)
	require.Len(t, path.Milestones, 2)
	assert.Empty(t, path.Milestones[0].Resources)
	assert.Empty(t, path.RelatedSkills)
}

func TestLearningPath_NoGap(t *testing.T) {
	a := newTestAnalyzer(t)

	path := a.LearningPath("Python", 8, 8)
	assert.Zero(t, path.TotalWeeks)
	assert.Empty(t, path.Milestones)

	path = a.LearningPath("Python", 9, 4)
	assert.Zero(t, path.TotalWeeks)
	assert.Empty(t, path.Milestones)
}
