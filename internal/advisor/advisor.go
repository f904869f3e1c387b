// Package advisor combines the job matcher and the skill gap analyzer
// into one career report.
package advisor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/gaps"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/types"
)

// Report is the combined output for one profile.
type Report struct {
	Recommendations []types.Recommendation `json:"recommendations"`
	SkillGaps       []types.SkillGap       `json:"skill_gaps"`
	TargetRoles     []string               `json:"target_roles"`
}

// Advisor runs the matcher and the gap analyzer together.
type Advisor struct {
	matcher  *matching.Matcher
	analyzer *gaps.Analyzer
}

// New creates an Advisor over the given catalog.
func New(c *catalog.Catalog) *Advisor {
	return &Advisor{
		matcher:  matching.New(c),
		analyzer: gaps.New(c),
	}
}

// Advise produces recommendations and skill gaps for one profile. The
// two analyses are independent and run concurrently.
func (a *Advisor) Advise(ctx context.Context, profile *types.UserProfile, topN int) (*Report, error) {
	report := &Report{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Recommendations = a.matcher.Recommend(profile, topN)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.TargetRoles = a.analyzer.TargetRoles(profile)
		report.SkillGaps = a.analyzer.Analyze(profile, report.TargetRoles)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
