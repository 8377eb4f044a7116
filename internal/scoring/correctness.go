package scoring

import "github.com/certlab/examgrade/internal/exam"

// selections is everything the learner submitted for one question,
// in submission order.
type selections struct {
	// optionIDs holds the distinct selected option ids, first
	// occurrence first. Records with no option id contribute time only.
	optionIDs []string

	// timeSpentSeconds sums time across every UserAnswer record for the
	// question, answered or not.
	timeSpentSeconds int
}

// first returns the first selected option id, or nil when the question
// was left unanswered.
func (s *selections) first() *string {
	if len(s.optionIDs) == 0 {
		return nil
	}
	id := s.optionIDs[0]
	return &id
}

// groupSelections maps question id to the learner's selections for it.
// A question may have zero, one, or many UserAnswer records; multi-select
// questions produce one record per selected option.
func groupSelections(answers []exam.UserAnswer) map[string]*selections {
	byQuestion := make(map[string]*selections)
	for _, ua := range answers {
		sel, ok := byQuestion[ua.QuestionID]
		if !ok {
			sel = &selections{}
			byQuestion[ua.QuestionID] = sel
		}
		sel.timeSpentSeconds += ua.TimeSpentSeconds
		if ua.OptionID == nil {
			continue
		}
		if !containsID(sel.optionIDs, *ua.OptionID) {
			sel.optionIDs = append(sel.optionIDs, *ua.OptionID)
		}
	}
	return byQuestion
}

// isQuestionCorrect is the single correctness procedure shared by the
// overall, knowledge-area, and difficulty aggregations.
//
// Single-choice (required_selections <= 1): exactly one distinct
// selection, and it is one of the correct options.
//
// Multi-select (required_selections > 1): the selected set equals the
// correct set exactly, and its size matches required_selections. A
// near-miss with one wrong or one missing option counts fully wrong;
// partial credit is deliberately rejected.
func isQuestionCorrect(q *exam.Question, selected []string) bool {
	correct := q.CorrectOptionIDs()
	if len(correct) == 0 {
		// Unscoreable; callers exclude these from the tally entirely.
		return false
	}

	if q.RequiredSelections <= 1 {
		return len(selected) == 1 && containsID(correct, selected[0])
	}

	if len(selected) != q.RequiredSelections {
		return false
	}
	if len(selected) != len(correct) {
		return false
	}
	for _, id := range selected {
		if !containsID(correct, id) {
			return false
		}
	}
	return true
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
