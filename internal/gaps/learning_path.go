package gaps

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/types"
)

const resourcesPerMilestone = 3

// LearningPath plans the climb from a current to a target level for one
// skill: one milestone per level, with total weeks derived from the
// skill's average learning time. Unknown skills use neutral defaults.
func (a *Analyzer) LearningPath(skillName string, currentLevel, targetLevel int) *types.LearningPath {
	weeks := defaultWeeks
	difficulty := defaultDifficulty
	var resources, related, roles []string

	if record := a.catalog.SkillByName(skillName); record != nil {
		weeks = record.AvgLearningWeeks
		difficulty = record.Difficulty
		resources = record.LearningResources
		related = record.RelatedSkills
		roles = record.JobRoles
	}

	weeksPerLevel := float64(weeks) / float64(maxLevel)
	gap := targetLevel - currentLevel

	milestoneResources := resources
	if len(milestoneResources) > resourcesPerMilestone {
		milestoneResources = milestoneResources[:resourcesPerMilestone]
	}

	var milestones []types.Milestone
	for level := currentLevel + 1; level <= targetLevel; level++ {
		milestones = append(milestones, types.Milestone{
			Level:          level,
			Description:    fmt.Sprintf("Reach level %d in %s", level, skillName),
			EstimatedWeeks: weeksPerLevel,
			Resources:      milestoneResources,
		})
	}

	totalWeeks := 0
	if gap > 0 {
		totalWeeks = int(float64(gap) * weeksPerLevel)
	}

	return &types.LearningPath{
		Skill:         skillName,
		CurrentLevel:  currentLevel,
		TargetLevel:   targetLevel,
		TotalWeeks:    totalWeeks,
		Difficulty:    difficulty,
		Milestones:    milestones,
		RelatedSkills: related,
		CareerImpact:  roles,
	}
}
