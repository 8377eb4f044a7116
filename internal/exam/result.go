package exam

// PerformanceLevel is a four-tier qualitative bucket derived from a
// numeric score percentage.
type PerformanceLevel string

const (
	PerformanceExcellent        PerformanceLevel = "excellent"
	PerformanceGood             PerformanceLevel = "good"
	PerformanceNeedsImprovement PerformanceLevel = "needs_improvement"
	PerformancePoor             PerformanceLevel = "poor"
)

// TimeEfficiency is a four-tier qualitative bucket derived from average
// time spent per question.
type TimeEfficiency string

const (
	EfficiencyExcellent TimeEfficiency = "excellent"
	EfficiencyGood      TimeEfficiency = "good"
	EfficiencyAdequate  TimeEfficiency = "adequate"
	EfficiencyRushed    TimeEfficiency = "rushed"
)

// QuestionResult is the graded outcome for a single question.
type QuestionResult struct {
	QuestionID     string `json:"question_id"`
	QuestionNumber int    `json:"question_number"`

	// UserAnswerID is the learner's first selection, kept for
	// backward-compatible single-answer display.
	UserAnswerID *string `json:"user_answer_id,omitempty"`

	// CorrectAnswerID is the first correct option of the question.
	CorrectAnswerID string `json:"correct_answer_id"`

	Correct bool `json:"is_correct"`

	// TimeSpentSeconds sums the time of every selection made on this
	// question.
	TimeSpentSeconds  int    `json:"time_spent_seconds"`
	KnowledgeAreaName string `json:"knowledge_area"`
}

// KnowledgeAreaScore is the per-area score breakdown.
type KnowledgeAreaScore struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	WeightPercentage float64          `json:"weight_percentage"`
	CorrectAnswers   int              `json:"correct_answers"`
	TotalQuestions   int              `json:"total_questions"`
	ScorePercentage  int              `json:"score_percentage"`
	Performance      PerformanceLevel `json:"performance_level"`
}

// DifficultyStats is the per-tier correctness breakdown.
type DifficultyStats struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// DetailedResult is the full graded, multi-dimensional performance
// report for one attempt.
type DetailedResult struct {
	AttemptID        string                              `json:"attempt_id"`
	ScorePercentage  int                                 `json:"score_percentage"`
	CorrectAnswers   int                                 `json:"correct_answers"`
	TotalQuestions   int                                 `json:"total_questions"`
	Passed           bool                                `json:"passed"`
	TimeSpentMinutes int                                 `json:"time_spent_minutes"`
	Questions        []QuestionResult                    `json:"question_results"`
	AreaScores       []KnowledgeAreaScore                `json:"knowledge_area_scores"`
	Performance      PerformanceLevel                    `json:"overall_performance_level"`
	Efficiency       TimeEfficiency                      `json:"time_efficiency"`
	Difficulty       map[DifficultyLevel]DifficultyStats `json:"difficulty_breakdown"`

	// Diagnostics carries data-consistency warnings encountered while
	// scoring (never errors; see the scoring package).
	Diagnostics []string `json:"diagnostics,omitempty"`
}
