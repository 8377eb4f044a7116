// Package report renders a graded exam result for its consumers: a
// styled terminal report and a stable JSON encoding.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/certlab/examgrade/internal/advice"
	"github.com/certlab/examgrade/internal/exam"
)

// Palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#F43F5E")
	colorAccent  = lipgloss.Color("#F97316")
	colorDim     = lipgloss.Color("#94A3B8")
	colorBorder  = lipgloss.Color("#334155")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warnStyle  = lipgloss.NewStyle().Foreground(colorAccent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)

// Render produces the full terminal report for a graded result.
func Render(result *exam.DetailedResult) string {
	var b strings.Builder

	b.WriteString(cardStyle.Render(summaryCard(result)))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Knowledge areas"))
	b.WriteString("\n")
	b.WriteString(areaTable(result.AreaScores))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Difficulty"))
	b.WriteString("\n")
	b.WriteString(difficultyRows(result.Difficulty))

	if len(result.Diagnostics) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Data warnings"))
		b.WriteString("\n")
		for _, d := range result.Diagnostics {
			b.WriteString(warnStyle.Render("  ! " + d))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func summaryCard(result *exam.DetailedResult) string {
	verdict := failStyle.Render("FAILED")
	if result.Passed {
		verdict = passStyle.Render("PASSED")
	}

	lines := []string{
		fmt.Sprintf("%s  %s", titleStyle.Render(fmt.Sprintf("Score: %d%%", result.ScorePercentage)), verdict),
		fmt.Sprintf("%d of %d questions correct", result.CorrectAnswers, result.TotalQuestions),
		dimStyle.Render(fmt.Sprintf("Performance: %s   Pace: %s   Time: %d min",
			displayLevel(string(result.Performance)), displayLevel(string(result.Efficiency)), result.TimeSpentMinutes)),
	}
	return strings.Join(lines, "\n")
}

func areaTable(areas []exam.KnowledgeAreaScore) string {
	var b strings.Builder
	for _, a := range areas {
		mark := levelMark(a.Performance)
		fmt.Fprintf(&b, "  %s %-28s %3d%%  (%d/%d)  %s\n",
			mark, a.Name, a.ScorePercentage, a.CorrectAnswers, a.TotalQuestions,
			dimStyle.Render(fmt.Sprintf("weight %.0f%%", a.WeightPercentage)))
	}
	return b.String()
}

func difficultyRows(breakdown map[exam.DifficultyLevel]exam.DifficultyStats) string {
	var b strings.Builder
	for _, level := range exam.Levels() {
		stats := breakdown[level]
		if stats.Total == 0 {
			fmt.Fprintf(&b, "  %-8s %s\n", level, dimStyle.Render("no questions"))
			continue
		}
		fmt.Fprintf(&b, "  %-8s %3.0f%%  (%d/%d)\n", level, stats.Percentage, stats.Correct, stats.Total)
	}
	return b.String()
}

// RenderAdvice appends the study plan section.
func RenderAdvice(plan *advice.StudyPlan, recs []advice.Recommendation) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Study plan"))
	b.WriteString("\n")
	if plan.Summary != "" {
		b.WriteString("  " + plan.Summary + "\n")
	}
	for _, f := range plan.Focus {
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("→"), f.Area)
		b.WriteString(dimStyle.Render("    "+f.Suggestion) + "\n")
	}
	// Exam-wide suggestions (pacing) come from the rules, not the plan.
	for _, r := range recs {
		if r.AreaID == "" {
			b.WriteString(dimStyle.Render("  "+r.Text) + "\n")
		}
	}
	return b.String()
}

func levelMark(level exam.PerformanceLevel) string {
	switch level {
	case exam.PerformanceExcellent, exam.PerformanceGood:
		return passStyle.Render("✓")
	case exam.PerformanceNeedsImprovement:
		return warnStyle.Render("~")
	default:
		return failStyle.Render("✗")
	}
}

func displayLevel(level string) string {
	return strings.ReplaceAll(level, "_", " ")
}
