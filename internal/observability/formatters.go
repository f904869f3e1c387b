// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs the ranked job recommendations.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.JobTitle))
		sb.WriteString(fmt.Sprintf("    Match: %.1f%%\n", rec.MatchPercentage))
		sb.WriteString(fmt.Sprintf("    Salary: %s\n", rec.SalaryRange))
		if rec.RemoteFriendly {
			sb.WriteString("    Remote friendly\n")
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recommendations)-maxItemsToShow))
	}

	p.printBox("CAREER RECOMMENDATIONS", sb.String())
}

// PrintSkillGaps outputs the detected skill gaps with importance tiers.
func (p *Printer) PrintSkillGaps(gaps []types.SkillGap) {
	if len(gaps) == 0 {
		p.printBox("SKILL GAPS", "No gaps detected for the target roles")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(gaps)))

	count := min(len(gaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := gaps[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", gap.Skill, gap.Importance))
		sb.WriteString(fmt.Sprintf("  Level %d → %d, ~%d weeks\n",
			gap.CurrentLevel, gap.RequiredLevel, gap.EstimatedWeeks))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(gaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(gaps)-maxItemsToShow))
	}

	p.printBox("SKILL GAPS", sb.String())
}

// PrintLearningPath outputs the milestone plan for one skill.
func (p *Printer) PrintLearningPath(path *types.LearningPath) {
	if path == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill:    %s\n", path.Skill))
	sb.WriteString(fmt.Sprintf("Levels:   %d → %d\n", path.CurrentLevel, path.TargetLevel))
	sb.WriteString(fmt.Sprintf("Duration: ~%d weeks\n", path.TotalWeeks))

	if len(path.Milestones) > 0 {
		sb.WriteString("\nMilestones:\n")
		count := min(len(path.Milestones), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, path.Milestones[i].Description))
		}
		if len(path.Milestones) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(path.Milestones)-maxItemsToShow))
		}
	}

	p.printBox("LEARNING PATH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPersonality outputs a personality classification result.
func (p *Printer) PrintPersonality(result *types.PersonalityResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dominant: %s\n\n", result.DominantColor))

	sb.WriteString("Scores:\n")
	for _, category := range types.PersonalityCategories {
		sb.WriteString(fmt.Sprintf("  %-7s %d\n", category, result.Scores[category]))
	}

	if len(result.CareerSuggestions) > 0 {
		sb.WriteString("\nSuggested careers:\n")
		count := min(len(result.CareerSuggestions), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.CareerSuggestions[i]))
		}
	}

	p.printBox("PERSONALITY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs a combined advisory report.
func (p *Printer) PrintReport(report *advisor.Report) {
	if report == nil {
		return
	}

	if len(report.TargetRoles) > 0 {
		p.printBox("TARGET ROLES", "• "+strings.Join(report.TargetRoles, "\n• "))
	}
	p.PrintRecommendations(report.Recommendations)
	p.PrintSkillGaps(report.SkillGaps)
}
