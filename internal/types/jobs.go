package types

// JobRecord describes one entry in the static job catalog.
type JobRecord struct {
	Title            string   `json:"job_title"`
	Description      string   `json:"description"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	Industries       []string `json:"industries"`
	ExperienceLevels []string `json:"experience_levels"`
	EducationLevels  []string `json:"education_requirements"`
	SalaryRange      string   `json:"salary_range"`
	GrowthProspects  string   `json:"growth_prospects"`
	RemoteFriendly   bool     `json:"remote_friendly"`
}

// Recommendation is one ranked job suggestion returned to the caller.
type Recommendation struct {
	JobTitle        string   `json:"job_title"`
	MatchPercentage float64  `json:"match_percentage"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	SalaryRange     string   `json:"salary_range"`
	GrowthProspects string   `json:"growth_prospects"`
	RemoteFriendly  bool     `json:"remote_friendly"`
	Industries      []string `json:"industries"`
}

// JobForecast describes projected demand for one role.
type JobForecast struct {
	JobTitle    string   `json:"job_title"`
	GrowthRate  int      `json:"growth_rate"`
	DemandLevel string   `json:"demand_level"`
	AvgSalary   string   `json:"avg_salary"`
	KeySkills   []string `json:"key_skills"`
	Trend       string   `json:"trend"`
	Category    string   `json:"category"`
}
