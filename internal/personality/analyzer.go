// Package personality tallies quiz answers into four color categories
// and reports the dominant one with its static trait lists.
package personality

import (
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// answerCategories maps quiz answer letters to color categories.
var answerCategories = map[string]string{
	"A": types.CategoryRed,
	"B": types.CategoryYellow,
	"C": types.CategoryGreen,
	"D": types.CategoryBlue,
}

// Analyzer classifies quiz responses using the personality catalog.
type Analyzer struct {
	catalog *catalog.Catalog
}

// New creates an analyzer over the given catalog.
func New(c *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: c}
}

// Questions returns the quiz questions in order.
func (a *Analyzer) Questions() []string {
	return a.catalog.Questions
}

// Classify tallies the answers and returns the dominant category with
// its trait lists. Answers are matched case-insensitively; unrecognized
// letters are ignored. Ties resolve in the fixed category priority order
// RED > YELLOW > GREEN > BLUE.
func (a *Analyzer) Classify(responses map[int]string) types.PersonalityResult {
	scores := map[string]int{
		types.CategoryRed:    0,
		types.CategoryYellow: 0,
		types.CategoryGreen:  0,
		types.CategoryBlue:   0,
	}

	for _, answer := range responses {
		if category, ok := answerCategories[strings.ToUpper(strings.TrimSpace(answer))]; ok {
			scores[category]++
		}
	}

	dominant := types.PersonalityCategories[0]
	for _, category := range types.PersonalityCategories {
		if scores[category] > scores[dominant] {
			dominant = category
		}
	}

	result := types.PersonalityResult{
		DominantColor: dominant,
		Scores:        scores,
	}

	if profile := a.catalog.ProfileByColor(dominant); profile != nil {
		result.CareerSuggestions = profile.Careers
		result.Strengths = profile.Strengths
		result.Weaknesses = profile.Weaknesses
	}

	return result
}
