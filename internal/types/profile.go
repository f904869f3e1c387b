// Package types provides type definitions for structured data used throughout the career-advisor system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Experience levels accepted in a user profile.
const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceExecutive = "executive"
)

// UserProfile describes one user for recommendation and gap analysis.
// It is supplied per request and never persisted.
type UserProfile struct {
	Skills              []string `json:"skills"`
	ExperienceLevel     string   `json:"experience_level" validate:"omitempty,oneof=entry mid senior executive"`
	Education           string   `json:"education"`
	PreferredIndustries []string `json:"preferred_industries"`
	Interests           []string `json:"interests"`
}

// Validate validates the UserProfile using the validator.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// SkillSet returns the user's skills lowercased as a set.
func (p *UserProfile) SkillSet() map[string]bool {
	return lowerSet(p.Skills)
}

// IndustrySet returns the user's preferred industries lowercased as a set.
func (p *UserProfile) IndustrySet() map[string]bool {
	return lowerSet(p.PreferredIndustries)
}

// InterestText joins the user's interests into one lowercase text blob.
func (p *UserProfile) InterestText() string {
	return strings.ToLower(strings.Join(p.Interests, " "))
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(strings.ToLower(item))
		if trimmed != "" {
			set[trimmed] = true
		}
	}
	return set
}
