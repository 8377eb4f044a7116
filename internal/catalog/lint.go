package catalog

import (
	"fmt"

	"github.com/certlab/examgrade/internal/exam"
)

// Finding is a data-consistency problem in a question catalog. The
// conditions mirror what the scoring engine warns about at grading
// time, so catalogs can be checked before any learner hits them.
type Finding struct {
	QuestionID string
	Message    string
}

func (f Finding) String() string {
	return fmt.Sprintf("question %s: %s", f.QuestionID, f.Message)
}

// Lint checks questions for consistency problems: no correct option,
// correct-option count drifting from required_selections, and invalid
// required_selections. Findings are warnings, not errors — the engine
// still grades such catalogs, at a cost to the achievable score.
func Lint(questions []exam.Question) []Finding {
	var findings []Finding
	for i := range questions {
		q := &questions[i]
		correct := len(q.CorrectOptionIDs())

		if q.RequiredSelections < 1 {
			findings = append(findings, Finding{
				QuestionID: q.ID,
				Message:    fmt.Sprintf("required_selections is %d, must be at least 1", q.RequiredSelections),
			})
		}
		if correct == 0 {
			findings = append(findings, Finding{
				QuestionID: q.ID,
				Message:    "no option is marked correct; the question will be excluded from the correctness tally but still count toward the total",
			})
			continue
		}
		if q.RequiredSelections >= 1 && correct != q.RequiredSelections {
			findings = append(findings, Finding{
				QuestionID: q.ID,
				Message:    fmt.Sprintf("%d correct options but %d required selections", correct, q.RequiredSelections),
			})
		}
	}
	return findings
}
