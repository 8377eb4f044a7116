package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certlab/examgrade/internal/exam"
)

func question(id string, required int, correct, wrong int) exam.Question {
	q := exam.Question{ID: id, RequiredSelections: required}
	for i := 0; i < correct; i++ {
		q.Options = append(q.Options, exam.AnswerOption{ID: id + "-c", Correct: true})
	}
	for i := 0; i < wrong; i++ {
		q.Options = append(q.Options, exam.AnswerOption{ID: id + "-w"})
	}
	return q
}

func TestLint_CleanCatalog(t *testing.T) {
	questions := []exam.Question{
		question("q1", 1, 1, 3),
		question("q2", 2, 2, 2),
	}
	assert.Empty(t, Lint(questions))
}

func TestLint_NoCorrectOption(t *testing.T) {
	findings := Lint([]exam.Question{question("q1", 1, 0, 4)})
	require.Len(t, findings, 1)
	assert.Equal(t, "q1", findings[0].QuestionID)
	assert.Contains(t, findings[0].Message, "no option is marked correct")
}

func TestLint_RequiredCountMismatch(t *testing.T) {
	findings := Lint([]exam.Question{question("q1", 3, 2, 1)})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "2 correct options but 3 required selections")
}

func TestLint_InvalidRequiredSelections(t *testing.T) {
	findings := Lint([]exam.Question{question("q1", 0, 1, 1)})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "must be at least 1")
}

func TestLint_ZeroCorrectReportedOnce(t *testing.T) {
	// A question with no correct option should not additionally report a
	// count mismatch; the missing key is the actionable problem.
	findings := Lint([]exam.Question{question("q1", 2, 0, 3)})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "no option is marked correct")
}
