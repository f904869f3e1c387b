// Package gaps estimates a user's proficiency per skill, compares it to
// role-specific target levels, and ranks the resulting deficits.
package gaps

import (
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// Importance weighting over skill metadata. The score scales with gap
// size and tiers into High/Medium/Low.
const (
	demandWeight     = 0.7
	difficultyWeight = 0.3

	highThreshold   = 7.0
	mediumThreshold = 4.0

	maxGaps  = 10
	maxLevel = 10
)

// Defaults for skills absent from the catalog.
const (
	defaultDemand     = 5
	defaultDifficulty = 5
	defaultWeeks      = 8
	defaultCategory   = "General"
)

// Base proficiency levels by experience tier.
var baseLevels = map[string]float64{
	types.ExperienceEntry:     3,
	types.ExperienceMid:       5,
	types.ExperienceSenior:    7,
	types.ExperienceExecutive: 8,
}

// Analyzer detects skill gaps against the role requirement catalog.
type Analyzer struct {
	catalog *catalog.Catalog
}

// New creates a gap analyzer over the given catalog.
func New(c *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: c}
}

// EstimateLevel estimates a user's current proficiency on the 1-10 scale
// from their experience tier and education. The estimate is truncated,
// not rounded, and capped at 10.
func EstimateLevel(profile *types.UserProfile) int {
	level, ok := baseLevels[strings.ToLower(profile.ExperienceLevel)]
	if !ok {
		level = baseLevels[types.ExperienceEntry]
	}

	education := strings.ToLower(profile.Education)
	if strings.Contains(education, "phd") {
		level += 1
	} else if strings.Contains(education, "master") {
		level += 0.5
	}

	if level > maxLevel {
		level = maxLevel
	}
	return int(level)
}

// TargetRoles derives target roles from the profile's interests via the
// catalog's interest mapping, deduplicated in first-occurrence order.
// When nothing matches it falls back to the catalog's default roles.
func (a *Analyzer) TargetRoles(profile *types.UserProfile) []string {
	var roles []string
	seen := make(map[string]bool)

	for _, interest := range profile.Interests {
		lowered := strings.ToLower(interest)
		for _, mapping := range a.catalog.InterestRoles {
			if !strings.Contains(lowered, mapping.Keyword) {
				continue
			}
			for _, role := range mapping.Roles {
				if !seen[role] {
					seen[role] = true
					roles = append(roles, role)
				}
			}
		}
	}

	if len(roles) == 0 {
		return append([]string{}, a.catalog.DefaultRoles...)
	}
	return roles
}

// Analyze compares the user's estimated levels against the requirements
// of the target roles and returns at most ten gaps, ranked by importance
// score then gap size, both descending. When no target roles are given
// they are derived from the profile's interests.
func (a *Analyzer) Analyze(profile *types.UserProfile, targetRoles []string) []types.SkillGap {
	currentLevel := EstimateLevel(profile)
	userSkills := profile.SkillSet()

	if len(targetRoles) == 0 {
		targetRoles = a.TargetRoles(profile)
	}

	var gaps []types.SkillGap
	analyzed := make(map[string]bool)

	for _, role := range targetRoles {
		requirement := a.catalog.RoleByName(role)
		if requirement == nil {
			continue
		}

		for _, target := range requirement.Skills {
			key := strings.ToLower(target.Name)
			if analyzed[key] {
				continue
			}

			current := 0
			if userSkills[key] {
				current = currentLevel
			}
			if current >= target.Level {
				continue
			}

			gaps = append(gaps, a.buildGap(target.Name, current, target.Level))
			analyzed[key] = true
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].ImportanceScore != gaps[j].ImportanceScore {
			return gaps[i].ImportanceScore > gaps[j].ImportanceScore
		}
		return gaps[i].GapSize > gaps[j].GapSize
	})

	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	return gaps
}

func (a *Analyzer) buildGap(skillName string, current, required int) types.SkillGap {
	demand := defaultDemand
	difficulty := defaultDifficulty
	weeks := defaultWeeks
	category := defaultCategory
	var resources []string

	if record := a.catalog.SkillByName(skillName); record != nil {
		demand = record.MarketDemand
		difficulty = record.Difficulty
		weeks = record.AvgLearningWeeks
		category = record.Category
		resources = record.LearningResources
	}

	gapSize := required - current
	importance := importanceScore(demand, difficulty, gapSize)

	return types.SkillGap{
		Skill:             skillName,
		CurrentLevel:      current,
		RequiredLevel:     required,
		GapSize:           gapSize,
		Importance:        importanceTier(importance),
		ImportanceScore:   importance,
		LearningResources: resources,
		EstimatedWeeks:    weeks,
		MarketDemand:      demand,
		Difficulty:        difficulty,
		Category:          category,
	}
}

func importanceScore(demand, difficulty, gapSize int) float64 {
	return (float64(demand)*demandWeight + float64(maxLevel-difficulty)*difficultyWeight) * float64(gapSize)
}

func importanceTier(score float64) string {
	switch {
	case score >= highThreshold:
		return types.ImportanceHigh
	case score >= mediumThreshold:
		return types.ImportanceMedium
	default:
		return types.ImportanceLow
	}
}
