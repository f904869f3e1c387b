package types

// SkillRecord describes one entry in the static skill catalog.
type SkillRecord struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Difficulty        int      `json:"difficulty"`
	MarketDemand      int      `json:"market_demand"`
	AvgLearningWeeks  int      `json:"avg_learning_time_weeks"`
	RelatedSkills     []string `json:"related_skills"`
	JobRoles          []string `json:"job_roles"`
	LearningResources []string `json:"learning_resources"`
}

// Importance tiers assigned to skill gaps.
const (
	ImportanceHigh   = "High"
	ImportanceMedium = "Medium"
	ImportanceLow    = "Low"
)

// SkillGap is one detected shortfall between a user's estimated level
// and a target role's required level. Computed fresh per request.
type SkillGap struct {
	Skill             string   `json:"skill"`
	CurrentLevel      int      `json:"current_level"`
	RequiredLevel     int      `json:"required_level"`
	GapSize           int      `json:"gap_size"`
	Importance        string   `json:"importance"`
	ImportanceScore   float64  `json:"importance_score"`
	LearningResources []string `json:"learning_resources"`
	EstimatedWeeks    int      `json:"estimated_learning_time"`
	MarketDemand      int      `json:"market_demand"`
	Difficulty        int      `json:"difficulty"`
	Category          string   `json:"category"`
}

// Milestone is one step of a learning path.
type Milestone struct {
	Level          int      `json:"level"`
	Description    string   `json:"description"`
	EstimatedWeeks float64  `json:"estimated_weeks"`
	Resources      []string `json:"resources"`
}

// LearningPath is the plan for raising one skill from a current to a target level.
type LearningPath struct {
	Skill         string      `json:"skill"`
	CurrentLevel  int         `json:"current_level"`
	TargetLevel   int         `json:"target_level"`
	TotalWeeks    int         `json:"estimated_total_weeks"`
	Difficulty    int         `json:"difficulty"`
	Milestones    []Milestone `json:"milestones"`
	RelatedSkills []string    `json:"related_skills"`
	CareerImpact  []string    `json:"career_impact"`
}
