// Package advice derives study recommendations from a graded exam
// result. The rule-based pass is the source of truth; a language model,
// when configured, only elaborates on what the rules found.
package advice

import (
	"fmt"
	"sort"

	"github.com/certlab/examgrade/internal/exam"
)

// Recommendation is one actionable study suggestion.
type Recommendation struct {
	// AreaID and AreaName identify the knowledge area, empty for
	// exam-wide suggestions such as pacing.
	AreaID   string `json:"area_id,omitempty"`
	AreaName string `json:"area_name,omitempty"`

	// Level is the performance level that triggered the suggestion.
	Level exam.PerformanceLevel `json:"performance_level,omitempty"`

	// Priority orders recommendations for display, 1 being most urgent.
	Priority int `json:"priority"`

	Text string `json:"text"`
}

// Recommend builds recommendations from the result: one per weak
// knowledge area (performance below good), highest weight first, plus a
// pacing suggestion when the attempt reads as rushed.
func Recommend(result *exam.DetailedResult) []Recommendation {
	weak := make([]exam.KnowledgeAreaScore, 0, len(result.AreaScores))
	for _, a := range result.AreaScores {
		if a.Performance == exam.PerformancePoor || a.Performance == exam.PerformanceNeedsImprovement {
			weak = append(weak, a)
		}
	}
	// AreaScores arrive weight-ordered already; poor areas outrank
	// needs-improvement ones at equal footing.
	sort.SliceStable(weak, func(i, j int) bool {
		return rank(weak[i].Performance) > rank(weak[j].Performance)
	})

	var recs []Recommendation
	for _, a := range weak {
		recs = append(recs, Recommendation{
			AreaID:   a.ID,
			AreaName: a.Name,
			Level:    a.Performance,
			Priority: len(recs) + 1,
			Text:     areaText(a),
		})
	}

	if result.Efficiency == exam.EfficiencyRushed {
		recs = append(recs, Recommendation{
			Priority: len(recs) + 1,
			Text:     "You moved through questions quickly. Slowing down to re-read each question often recovers easy points.",
		})
	}
	return recs
}

func rank(level exam.PerformanceLevel) int {
	if level == exam.PerformancePoor {
		return 1
	}
	return 0
}

func areaText(a exam.KnowledgeAreaScore) string {
	verb := "review"
	if a.Performance == exam.PerformancePoor {
		verb = "restudy"
	}
	return fmt.Sprintf("Your %s score was %d%% (%d of %d). This area carries %.0f%% of the exam — %s it before retaking.",
		a.Name, a.ScorePercentage, a.CorrectAnswers, a.TotalQuestions, a.WeightPercentage, verb)
}
