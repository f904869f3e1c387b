// Package chat classifies career questions into intents, composes
// template-based replies, and tracks per-session conversation state.
package chat

import (
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// intentPatterns pairs one intent with its trigger substrings. The slice
// order is the classification precedence: the first intent with any
// matching pattern wins.
type intentPatterns struct {
	intent   types.Intent
	patterns []string
}

var classificationOrder = []intentPatterns{
	{types.IntentCareerChange, []string{
		"career change", "switch career", "change job", "new career",
		"different field", "career transition", "pivot",
	}},
	{types.IntentSalaryNegotiation, []string{
		"salary", "negotiate", "pay raise", "compensation", "money",
		"wage", "income", "raise",
	}},
	{types.IntentSkillDevelopment, []string{
		"learn", "skill", "course", "training", "education",
		"improve", "develop", "certification",
	}},
	{types.IntentJobSearch, []string{
		"job search", "find job", "looking for", "apply", "hiring",
		"employment", "job hunting", "opportunities",
	}},
	{types.IntentInterviewPrep, []string{
		"interview", "preparation", "questions", "interview tips",
		"job interview", "behavioral questions",
	}},
	{types.IntentNetworking, []string{
		"network", "connections", "professional relationships",
		"meet people", "industry contacts", "linkedin",
	}},
	{types.IntentWorkLifeBalance, []string{
		"work life balance", "stress", "burnout", "time management",
		"balance", "wellness", "mental health",
	}},
}

// Classify maps free text to an intent by case-insensitive substring
// matching. Deterministic: the same text always yields the same intent.
func Classify(text string) types.Intent {
	lowered := strings.ToLower(text)

	for _, entry := range classificationOrder {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowered, pattern) {
				return entry.intent
			}
		}
	}

	return types.IntentGeneral
}
