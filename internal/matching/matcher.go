// Package matching scores user profiles against the static job catalog
// and produces ranked career recommendations.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// Weights for the match-score components. The skill, experience,
// education, industry and interest terms sum to 100.
const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
	skillsPoints         = 40.0
	experiencePoints     = 20.0
	educationPoints      = 15.0
	industryPoints       = 15.0
	interestPoints       = 10.0

	maxScore            = 100.0
	maxSkillSuggestions = 10

	// DefaultTopN is the recommendation count used when none is requested.
	DefaultTopN = 5
)

// Matcher scores profiles against the job catalog. The TF-IDF vectors
// over job text are built once at construction.
type Matcher struct {
	catalog *catalog.Catalog
	model   *tfidfModel
}

// New builds a Matcher, fitting the interest-similarity model over the
// description and skill text of every catalog job.
func New(c *catalog.Catalog) *Matcher {
	corpus := make([]string, len(c.Jobs))
	for i, job := range c.Jobs {
		corpus[i] = job.Description + " " +
			strings.Join(job.RequiredSkills, " ") + " " +
			strings.Join(job.PreferredSkills, " ")
	}

	return &Matcher{
		catalog: c,
		model:   fitTFIDF(corpus),
	}
}

// Score computes the 0-100 match score between a profile and the job at
// the given catalog index.
func (m *Matcher) Score(profile *types.UserProfile, jobIndex int) float64 {
	job := &m.catalog.Jobs[jobIndex]
	score := 0.0

	userSkills := profile.SkillSet()
	requiredMatch := coverage(userSkills, job.RequiredSkills)
	preferredMatch := coverage(userSkills, job.PreferredSkills)
	score += (requiredMatch*requiredSkillWeight + preferredMatch*preferredSkillWeight) * skillsPoints

	if containsFold(job.ExperienceLevels, profile.ExperienceLevel) {
		score += experiencePoints
	}

	if containsFold(job.EducationLevels, profile.Education) {
		score += educationPoints
	}

	if intersects(profile.IndustrySet(), job.Industries) {
		score += industryPoints
	}

	if interestText := profile.InterestText(); strings.TrimSpace(interestText) != "" {
		similarity := cosineSimilarity(m.model.transform(interestText), m.model.documents[jobIndex])
		score += similarity * interestPoints
	}

	return math.Min(score, maxScore)
}

// Recommend scores every catalog job and returns the top N as
// recommendation records, sorted by descending match percentage with
// catalog order breaking ties.
func (m *Matcher) Recommend(profile *types.UserProfile, topN int) []types.Recommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}

	recommendations := make([]types.Recommendation, 0, len(m.catalog.Jobs))
	for i, job := range m.catalog.Jobs {
		score := m.Score(profile, i)
		recommendations = append(recommendations, types.Recommendation{
			JobTitle:        job.Title,
			MatchPercentage: math.Round(score*10) / 10,
			Description:     job.Description,
			RequiredSkills:  job.RequiredSkills,
			SalaryRange:     job.SalaryRange,
			GrowthProspects: job.GrowthProspects,
			RemoteFriendly:  job.RemoteFriendly,
			Industries:      job.Industries,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchPercentage > recommendations[j].MatchPercentage
	})

	if len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	return recommendations
}

// MissingSkills returns the skills the user lacks for the named job:
// missing required skills first, then missing preferred skills, each
// group sorted alphabetically, at most ten in total. Unknown job titles
// yield an empty list.
func (m *Matcher) MissingSkills(profile *types.UserProfile, jobTitle string) []string {
	job := m.catalog.JobByTitle(jobTitle)
	if job == nil {
		return nil
	}

	userSkills := profile.SkillSet()
	missing := append(missingFrom(userSkills, job.RequiredSkills),
		missingFrom(userSkills, job.PreferredSkills)...)

	if len(missing) > maxSkillSuggestions {
		missing = missing[:maxSkillSuggestions]
	}
	return missing
}

// coverage returns |user ∩ skills| / |skills|, or 0 for an empty skill set.
func coverage(userSkills map[string]bool, skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}
	matched := 0
	for _, skill := range skills {
		if userSkills[strings.ToLower(skill)] {
			matched++
		}
	}
	return float64(matched) / float64(len(skills))
}

func containsFold(values []string, target string) bool {
	if target == "" {
		return false
	}
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func intersects(set map[string]bool, values []string) bool {
	for _, v := range values {
		if set[strings.ToLower(v)] {
			return true
		}
	}
	return false
}

func missingFrom(userSkills map[string]bool, skills []string) []string {
	missing := make([]string, 0, len(skills))
	for _, skill := range skills {
		if !userSkills[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)
	return missing
}
