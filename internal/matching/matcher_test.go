package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return New(c)
}

func jobIndex(t *testing.T, c *catalog.Catalog, title string) int {
	t.Helper()
	for i := range c.Jobs {
		if c.Jobs[i].Title == title {
			return i
		}
	}
	t.Fatalf("job %q not in catalog", title)
	return -1
}

func TestScore_PartialRequiredCoverageWithBonuses(t *testing.T) {
	m := newTestMatcher(t)
	profile := &types.UserProfile{
		Skills:              []string{"Python", "SQL"},
		ExperienceLevel:     types.ExperienceMid,
		Education:           "bachelor",
		PreferredIndustries: []string{"Technology"},
		Interests:           []string{},
	}

	score := m.Score(profile, jobIndex(t, m.catalog, "Data Scientist"))

	// 2 of 6 required skills: (2/6*0.7)*40 ≈ 9.33, plus the mid-experience,
	// bachelor-education and technology-industry bonuses. No interest term.
	assert.InDelta(t, 9.33+20+15+15, score, 0.01)
}

func TestScore_EmptyProfileGetsOnlyFlatBonuses(t *testing.T) {
	m := newTestMatcher(t)
	profile := &types.UserProfile{
		ExperienceLevel: types.ExperienceMid,
		Education:       "bachelor",
	}

	for i := range m.catalog.Jobs {
		job := m.catalog.Jobs[i]
		expected := 0.0
		if containsFold(job.ExperienceLevels, profile.ExperienceLevel) {
			expected += experiencePoints
		}
		if containsFold(job.EducationLevels, profile.Education) {
			expected += educationPoints
		}
		assert.InDelta(t, expected, m.Score(profile, i), 1e-9, "job %s", job.Title)
	}
}

func TestScore_EmptySkillSetsYieldZeroNotError(t *testing.T) {
	m := newTestMatcher(t)

	score := m.Score(&types.UserProfile{}, 0)
	assert.Zero(t, score)
}

func TestScore_CappedAtHundred(t *testing.T) {
	m := newTestMatcher(t)
	ds := m.catalog.JobByTitle("Data Scientist")
	require.NotNil(t, ds)

	// Interests mirror the job's corpus document (description + skills), so
	// the cosine term is 1.0 and every component contributes in full:
	// 40 + 20 + 15 + 15 + 10 lands exactly on the cap.
	interestText := ds.Description + " " +
		strings.Join(ds.RequiredSkills, " ") + " " +
		strings.Join(ds.PreferredSkills, " ")

	profile := &types.UserProfile{
		Skills:              append(append([]string{}, ds.RequiredSkills...), ds.PreferredSkills...),
		ExperienceLevel:     types.ExperienceSenior,
		Education:           "phd",
		PreferredIndustries: ds.Industries,
		Interests:           []string{interestText},
	}

	score := m.Score(profile, jobIndex(t, m.catalog, "Data Scientist"))
	assert.LessOrEqual(t, score, maxScore)
	assert.InDelta(t, maxScore, score, 1e-9)
}

func TestScore_InterestSimilarityContributes(t *testing.T) {
	m := newTestMatcher(t)
	idx := jobIndex(t, m.catalog, "Data Scientist")

	without := m.Score(&types.UserProfile{}, idx)
	with := m.Score(&types.UserProfile{
		Interests: []string{"machine learning", "statistical data analysis"},
	}, idx)

	assert.Greater(t, with, without)
	assert.LessOrEqual(t, with-without, interestPoints)
}

func TestRecommend_SortedBoundedSubset(t *testing.T) {
	m := newTestMatcher(t)
	profile := &types.UserProfile{
		Skills:          []string{"Python", "Machine Learning", "Statistics"},
		ExperienceLevel: types.ExperienceSenior,
		Education:       "master",
	}

	recs := m.Recommend(profile, 3)
	require.Len(t, recs, 3)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchPercentage, recs[i].MatchPercentage)
	}
	for _, rec := range recs {
		assert.NotNil(t, m.catalog.JobByTitle(rec.JobTitle))
	}
}

func TestRecommend_DefaultTopN(t *testing.T) {
	m := newTestMatcher(t)

	recs := m.Recommend(&types.UserProfile{}, 0)
	assert.Len(t, recs, DefaultTopN)
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	m := newTestMatcher(t)

	// An empty profile scores 0 everywhere, so the ranking must preserve
	// catalog iteration order.
	recs := m.Recommend(&types.UserProfile{}, len(m.catalog.Jobs))
	require.Len(t, recs, len(m.catalog.Jobs))
	for i := range recs {
		assert.Equal(t, m.catalog.Jobs[i].Title, recs[i].JobTitle)
	}
}

func TestMissingSkills_OrderedAndBounded(t *testing.T) {
	m := newTestMatcher(t)
	profile := &types.UserProfile{Skills: []string{"Python", "SQL"}}

	missing := m.MissingSkills(profile, "Data Scientist")
	require.NotEmpty(t, missing)
	assert.LessOrEqual(t, len(missing), maxSkillSuggestions)

	// Required gaps first, alphabetical within the group.
	assert.Equal(t, []string{"Data Visualization", "Machine Learning", "R", "Statistics"}, missing[:4])
	// Then preferred gaps, alphabetical within the group.
	assert.Equal(t, []string{"Big Data", "Cloud Computing", "Deep Learning", "Tableau"}, missing[4:])
}

func TestMissingSkills_UnknownJob(t *testing.T) {
	m := newTestMatcher(t)

	assert.Empty(t, m.MissingSkills(&types.UserProfile{}, "Astronaut"))
}

func TestMissingSkills_FullyCoveredProfile(t *testing.T) {
	m := newTestMatcher(t)
	ds := m.catalog.JobByTitle("Data Scientist")
	require.NotNil(t, ds)

	profile := &types.UserProfile{
		Skills: append(append([]string{}, ds.RequiredSkills...), ds.PreferredSkills...),
	}
	assert.Empty(t, m.MissingSkills(profile, "Data Scientist"))
}
