package scoring

import "github.com/certlab/examgrade/internal/exam"

// PerformanceLevel buckets a 0-100 score percentage into a qualitative
// level. The same thresholds apply to the overall score and to every
// knowledge-area score.
func PerformanceLevel(scorePercentage int) exam.PerformanceLevel {
	switch {
	case scorePercentage >= 90:
		return exam.PerformanceExcellent
	case scorePercentage >= 75:
		return exam.PerformanceGood
	case scorePercentage >= 60:
		return exam.PerformanceNeedsImprovement
	default:
		return exam.PerformancePoor
	}
}

// TimeEfficiency buckets the average minutes spent per question.
// Thresholds are calibrated against a ~1.5 min/question exam design:
// using most of the budgeted time reads as thorough, well under half of
// it as rushed.
func TimeEfficiency(timeSpentMinutes, questionCount int) exam.TimeEfficiency {
	if questionCount == 0 {
		return exam.EfficiencyAdequate
	}
	avg := float64(timeSpentMinutes) / float64(questionCount)
	switch {
	case avg >= 1.0:
		return exam.EfficiencyExcellent
	case avg >= 0.75:
		return exam.EfficiencyGood
	case avg >= 0.5:
		return exam.EfficiencyAdequate
	default:
		return exam.EfficiencyRushed
	}
}
