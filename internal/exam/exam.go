package exam

// DifficultyLevel classifies how hard a question is.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Levels returns all difficulty levels in display order.
func Levels() []DifficultyLevel {
	return []DifficultyLevel{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// KnowledgeArea is a weighted topic grouping of exam questions,
// e.g. "Data Security" at 25% of the exam design.
type KnowledgeArea struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	WeightPercentage float64 `json:"weight_percentage"`
}

// AnswerOption is one selectable option of a question.
type AnswerOption struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"is_correct"`
}

// Question is an immutable catalog entry.
type Question struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Options    []AnswerOption  `json:"answers"`
	Area       KnowledgeArea   `json:"knowledge_area"`
	Difficulty DifficultyLevel `json:"difficulty_level"`

	// Number is the 1-based position of the question in the exam.
	Number int `json:"question_number"`

	// RequiredSelections is how many options must be chosen for the
	// question to be answerable correctly. 1 for single-choice, >1 for
	// multi-select.
	RequiredSelections int `json:"required_selections"`
}

// CorrectOptions returns the subset of options marked correct.
func (q *Question) CorrectOptions() []AnswerOption {
	var out []AnswerOption
	for _, o := range q.Options {
		if o.Correct {
			out = append(out, o)
		}
	}
	return out
}

// CorrectOptionIDs returns the ids of the options marked correct,
// in option order.
func (q *Question) CorrectOptionIDs() []string {
	var out []string
	for _, o := range q.Options {
		if o.Correct {
			out = append(out, o.ID)
		}
	}
	return out
}

// UserAnswer is a single selection event. Multi-select questions produce
// one UserAnswer per selected option; an unanswered question may have no
// UserAnswer at all, or one with a nil OptionID.
type UserAnswer struct {
	QuestionID       string  `json:"question_id"`
	OptionID         *string `json:"answer_id,omitempty"`
	TimeSpentSeconds int     `json:"time_spent_seconds"`
}

// Attempt is the completed attempt record produced by the exam-session
// collaborator. TimeSpentMinutes is the authoritative elapsed time.
type Attempt struct {
	ID               string `json:"id"`
	TimeSpentMinutes int    `json:"time_spent_minutes"`
	QuestionCount    int    `json:"question_count"`
	AnswerCount      int    `json:"answer_count"`
}
