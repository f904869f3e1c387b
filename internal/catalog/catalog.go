// Package catalog loads the static, hand-curated data tables that back
// every advisory component: job records, skill metadata, role requirement
// maps, chat templates, the personality quiz, and job forecasts.
//
// The tables are embedded JSON documents validated against the JSON
// Schemas in the top-level schemas package. A Catalog is loaded once at
// process start and is read-only afterwards.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/jonathan/career-advisor/internal/types"
	schemadocs "github.com/jonathan/career-advisor/schemas"
)

//go:embed data/*.json
var dataFS embed.FS

// SkillTarget is one required skill with a target proficiency level (1-10).
type SkillTarget struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// RoleRequirement lists the skill targets for one role, in catalog order.
type RoleRequirement struct {
	Role   string        `json:"role"`
	Skills []SkillTarget `json:"skills"`
}

// InterestMapping maps an interest keyword to suggested target roles.
type InterestMapping struct {
	Keyword string   `json:"keyword"`
	Roles   []string `json:"roles"`
}

// IntentTemplates holds the response openers for one chat intent.
type IntentTemplates struct {
	Intent  types.Intent `json:"intent"`
	Openers []string     `json:"openers"`
}

// KnowledgeCategory is one named list of advice bullets. Order matters:
// the first category doubles as the fallback when an intent has no
// matching category.
type KnowledgeCategory struct {
	Key   string   `json:"key"`
	Items []string `json:"items"`
}

// PersonalityProfile holds the static trait lists for one color category.
type PersonalityProfile struct {
	Color      string   `json:"color"`
	Careers    []string `json:"careers"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Catalog is the full set of static tables. Immutable after Load.
type Catalog struct {
	Jobs             []types.JobRecord
	Skills           []types.SkillRecord
	DefaultRoles     []string
	InterestRoles    []InterestMapping
	RoleRequirements []RoleRequirement
	Templates        []IntentTemplates
	FallbackOpener   string
	Knowledge        []KnowledgeCategory
	GeneralResponses []string
	Questions        []string
	Profiles         []PersonalityProfile
	Forecasts        []types.JobForecast

	skillsByName map[string]*types.SkillRecord
	rolesByName  map[string]*RoleRequirement
}

// LoadError reports a catalog document that failed to load or validate.
type LoadError struct {
	Document string
	Cause    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog document %s: %v", e.Document, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load parses and schema-validates every embedded catalog document.
func Load() (*Catalog, error) {
	c := &Catalog{}

	var jobsDoc struct {
		Jobs []types.JobRecord `json:"jobs"`
	}
	if err := loadDocument("jobs.json", schemadocs.Jobs, &jobsDoc); err != nil {
		return nil, err
	}
	c.Jobs = jobsDoc.Jobs

	var skillsDoc struct {
		Skills []types.SkillRecord `json:"skills"`
	}
	if err := loadDocument("skills.json", schemadocs.Skills, &skillsDoc); err != nil {
		return nil, err
	}
	c.Skills = skillsDoc.Skills

	var rolesDoc struct {
		DefaultRoles     []string          `json:"default_roles"`
		InterestRoles    []InterestMapping `json:"interest_roles"`
		RoleRequirements []RoleRequirement `json:"role_requirements"`
	}
	if err := loadDocument("roles.json", schemadocs.Roles, &rolesDoc); err != nil {
		return nil, err
	}
	c.DefaultRoles = rolesDoc.DefaultRoles
	c.InterestRoles = rolesDoc.InterestRoles
	c.RoleRequirements = rolesDoc.RoleRequirements

	var chatDoc struct {
		Templates        []IntentTemplates   `json:"templates"`
		FallbackOpener   string              `json:"fallback_opener"`
		Knowledge        []KnowledgeCategory `json:"knowledge"`
		GeneralResponses []string            `json:"general_responses"`
	}
	if err := loadDocument("chat.json", schemadocs.Chat, &chatDoc); err != nil {
		return nil, err
	}
	c.Templates = chatDoc.Templates
	c.FallbackOpener = chatDoc.FallbackOpener
	c.Knowledge = chatDoc.Knowledge
	c.GeneralResponses = chatDoc.GeneralResponses

	var personalityDoc struct {
		Questions []string             `json:"questions"`
		Profiles  []PersonalityProfile `json:"profiles"`
	}
	if err := loadDocument("personality.json", schemadocs.Personality, &personalityDoc); err != nil {
		return nil, err
	}
	c.Questions = personalityDoc.Questions
	c.Profiles = personalityDoc.Profiles

	var forecastsDoc struct {
		Forecasts []types.JobForecast `json:"forecasts"`
	}
	if err := loadDocument("forecasts.json", schemadocs.Forecasts, &forecastsDoc); err != nil {
		return nil, err
	}
	c.Forecasts = forecastsDoc.Forecasts

	c.buildIndexes()
	return c, nil
}

// MustLoad is Load for static initialization contexts; it panics on error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func loadDocument(name string, schema []byte, target any) error {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return &LoadError{Document: name, Cause: err}
	}

	if err := schemas.ValidateBytes(name, schema, data); err != nil {
		return &LoadError{Document: name, Cause: err}
	}

	if err := json.Unmarshal(data, target); err != nil {
		return &LoadError{Document: name, Cause: err}
	}

	return nil
}

func (c *Catalog) buildIndexes() {
	c.skillsByName = make(map[string]*types.SkillRecord, len(c.Skills))
	for i := range c.Skills {
		c.skillsByName[strings.ToLower(c.Skills[i].Name)] = &c.Skills[i]
	}

	c.rolesByName = make(map[string]*RoleRequirement, len(c.RoleRequirements))
	for i := range c.RoleRequirements {
		c.rolesByName[strings.ToLower(c.RoleRequirements[i].Role)] = &c.RoleRequirements[i]
	}
}

// JobByTitle returns the job record with the given title, or nil if the
// title is unknown. Matching is case-insensitive.
func (c *Catalog) JobByTitle(title string) *types.JobRecord {
	for i := range c.Jobs {
		if strings.EqualFold(c.Jobs[i].Title, title) {
			return &c.Jobs[i]
		}
	}
	return nil
}

// SkillByName returns the skill record with the given name, or nil if the
// skill is unknown. Matching is case-insensitive.
func (c *Catalog) SkillByName(name string) *types.SkillRecord {
	return c.skillsByName[strings.ToLower(name)]
}

// RoleByName returns the requirement map for the given role, or nil if
// the role is unknown. Matching is case-insensitive.
func (c *Catalog) RoleByName(role string) *RoleRequirement {
	return c.rolesByName[strings.ToLower(role)]
}

// TemplatesForIntent returns the openers for the given intent, or nil.
func (c *Catalog) TemplatesForIntent(intent types.Intent) []string {
	for i := range c.Templates {
		if c.Templates[i].Intent == intent {
			return c.Templates[i].Openers
		}
	}
	return nil
}

// KnowledgeByKey returns the knowledge list for the given key, or nil.
func (c *Catalog) KnowledgeByKey(key string) []string {
	for i := range c.Knowledge {
		if c.Knowledge[i].Key == key {
			return c.Knowledge[i].Items
		}
	}
	return nil
}

// ProfileByColor returns the personality profile for the given color,
// or nil for an unknown color.
func (c *Catalog) ProfileByColor(color string) *PersonalityProfile {
	for i := range c.Profiles {
		if c.Profiles[i].Color == color {
			return &c.Profiles[i]
		}
	}
	return nil
}

// ForecastsByCategory returns the forecasts for one category; "all"
// returns every forecast. An unknown category yields an empty list.
func (c *Catalog) ForecastsByCategory(category string) []types.JobForecast {
	if category == "" || category == "all" {
		out := make([]types.JobForecast, len(c.Forecasts))
		copy(out, c.Forecasts)
		return out
	}

	out := make([]types.JobForecast, 0)
	for _, f := range c.Forecasts {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}
