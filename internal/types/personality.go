package types

// Personality categories, in fixed tie-break priority order.
const (
	CategoryRed    = "RED"
	CategoryYellow = "YELLOW"
	CategoryGreen  = "GREEN"
	CategoryBlue   = "BLUE"
)

// PersonalityCategories lists the four categories in priority order.
// Ties for the dominant category resolve to the earliest entry.
var PersonalityCategories = []string{CategoryRed, CategoryYellow, CategoryGreen, CategoryBlue}

// PersonalityResult is the outcome of classifying one set of quiz answers.
type PersonalityResult struct {
	DominantColor     string         `json:"dominant_color"`
	Scores            map[string]int `json:"scores"`
	CareerSuggestions []string       `json:"career_suggestions"`
	Strengths         []string       `json:"strengths"`
	Weaknesses        []string       `json:"weaknesses"`
}
