// Package scoring turns a learner's raw answer submissions into a
// graded, multi-dimensional performance report.
//
// The engine is a pure computation over in-memory snapshots: no I/O, no
// mutation, and identical inputs always produce identical outputs. It
// never fails on malformed-but-present data; data-consistency problems
// are logged and surfaced as diagnostics on the result instead.
package scoring

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/certlab/examgrade/internal/exam"
)

// Engine computes exam results. The zero-value-equivalent New() engine
// logs diagnostics through log.Default.
type Engine struct {
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger directs data-consistency warnings to l. A nil l silences
// them (they still appear on the result's Diagnostics).
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: log.Default()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// CalculateExamResults grades an attempt with a default engine.
func CalculateExamResults(questions []exam.Question, answers []exam.UserAnswer, attempt exam.Attempt, passingThreshold int) exam.DetailedResult {
	return New().CalculateExamResults(questions, answers, attempt, passingThreshold)
}

// CalculateExamResults computes per-question correctness and derives the
// overall score, knowledge-area scores, difficulty breakdown, and the
// performance and time-efficiency classifications.
//
// Unanswered questions count as wrong, never excluded: the denominator
// is always the full catalog question count. Questions with no correct
// option cannot be scored either way; they are excluded from the
// correct/incorrect tally but still count toward every denominator, and
// each one is reported as a diagnostic.
func (e *Engine) CalculateExamResults(questions []exam.Question, answers []exam.UserAnswer, attempt exam.Attempt, passingThreshold int) exam.DetailedResult {
	byQuestion := groupSelections(answers)

	var (
		correctCount int
		results      []exam.QuestionResult
		diagnostics  []string
	)

	for i := range questions {
		q := &questions[i]
		correct := q.CorrectOptions()

		if len(correct) == 0 {
			diagnostics = e.warn(diagnostics, "question %s has no correct option; excluded from the correctness tally", q.ID)
			continue
		}
		if len(correct) != q.RequiredSelections {
			diagnostics = e.warn(diagnostics, "question %s: %d correct options but %d required selections", q.ID, len(correct), q.RequiredSelections)
		}

		sel := byQuestion[q.ID]
		if sel == nil {
			sel = &selections{}
		}

		isCorrect := isQuestionCorrect(q, sel.optionIDs)
		if isCorrect {
			correctCount++
		}

		results = append(results, exam.QuestionResult{
			QuestionID:        q.ID,
			QuestionNumber:    q.Number,
			UserAnswerID:      sel.first(),
			CorrectAnswerID:   correct[0].ID,
			Correct:           isCorrect,
			TimeSpentSeconds:  sel.timeSpentSeconds,
			KnowledgeAreaName: q.Area.Name,
		})
	}

	score := roundPercentage(correctCount, len(questions))

	return exam.DetailedResult{
		AttemptID:        attempt.ID,
		ScorePercentage:  score,
		CorrectAnswers:   correctCount,
		TotalQuestions:   len(questions),
		Passed:           score >= passingThreshold,
		TimeSpentMinutes: attempt.TimeSpentMinutes,
		Questions:        results,
		AreaScores:       e.knowledgeAreaScores(questions, byQuestion),
		Performance:      PerformanceLevel(score),
		Efficiency:       TimeEfficiency(attempt.TimeSpentMinutes, len(questions)),
		Difficulty:       e.difficultyBreakdown(questions, byQuestion),
		Diagnostics:      diagnostics,
	}
}

// knowledgeAreaScores groups questions by knowledge area and re-derives
// correctness per group. It deliberately does not reuse the top-level
// per-question list, so area scores stay derivable from the inputs
// alone. Sorted by area weight descending for priority-ordered display.
func (e *Engine) knowledgeAreaScores(questions []exam.Question, byQuestion map[string]*selections) []exam.KnowledgeAreaScore {
	var order []string
	groups := make(map[string][]*exam.Question)
	areas := make(map[string]exam.KnowledgeArea)

	for i := range questions {
		q := &questions[i]
		if _, ok := groups[q.Area.ID]; !ok {
			order = append(order, q.Area.ID)
			areas[q.Area.ID] = q.Area
		}
		groups[q.Area.ID] = append(groups[q.Area.ID], q)
	}

	scores := make([]exam.KnowledgeAreaScore, 0, len(order))
	for _, areaID := range order {
		group := groups[areaID]
		correct := tally(group, byQuestion)
		pct := roundPercentage(correct, len(group))

		area := areas[areaID]
		scores = append(scores, exam.KnowledgeAreaScore{
			ID:               area.ID,
			Name:             area.Name,
			WeightPercentage: area.WeightPercentage,
			CorrectAnswers:   correct,
			TotalQuestions:   len(group),
			ScorePercentage:  pct,
			Performance:      PerformanceLevel(pct),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].WeightPercentage > scores[j].WeightPercentage
	})
	return scores
}

// difficultyBreakdown re-derives correctness per difficulty tier. Every
// tier is present in the output, even with zero questions.
func (e *Engine) difficultyBreakdown(questions []exam.Question, byQuestion map[string]*selections) map[exam.DifficultyLevel]exam.DifficultyStats {
	groups := make(map[exam.DifficultyLevel][]*exam.Question)
	for i := range questions {
		q := &questions[i]
		groups[q.Difficulty] = append(groups[q.Difficulty], q)
	}

	breakdown := make(map[exam.DifficultyLevel]exam.DifficultyStats, len(exam.Levels()))
	for _, level := range exam.Levels() {
		group := groups[level]
		correct := tally(group, byQuestion)
		breakdown[level] = exam.DifficultyStats{
			Correct:    correct,
			Total:      len(group),
			Percentage: float64(roundPercentage(correct, len(group))),
		}
	}
	return breakdown
}

// tally counts correct answers in a question group using the shared
// correctness procedure. Questions with no correct option are skipped.
func tally(group []*exam.Question, byQuestion map[string]*selections) int {
	correct := 0
	for _, q := range group {
		if len(q.CorrectOptionIDs()) == 0 {
			continue
		}
		var selected []string
		if sel := byQuestion[q.ID]; sel != nil {
			selected = sel.optionIDs
		}
		if isQuestionCorrect(q, selected) {
			correct++
		}
	}
	return correct
}

// roundPercentage computes round-half-up(correct/total*100).
func roundPercentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// warn records a data-consistency diagnostic without failing the run.
func (e *Engine) warn(diagnostics []string, format string, args ...any) []string {
	msg := fmt.Sprintf(format, args...)
	if e.logger != nil {
		e.logger.Printf("scoring: %s", msg)
	}
	return append(diagnostics, msg)
}
